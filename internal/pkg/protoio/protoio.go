// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package protoio provides functions for reading and writing proto messages as
// newline-separated JSON.
package protoio

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// WriteMessagesJSON writes multiple proto messages as newline-separated JSON to a file.
func WriteMessagesJSON[M proto.Message](filePath string, messages []M) error {
	var buf bytes.Buffer
	if err := EncodeMessagesJSON(&buf, messages); err != nil {
		return err
	}
	return os.WriteFile(filePath, buf.Bytes(), 0o644)
}

// EncodeMessagesJSON writes multiple proto messages as newline-separated JSON to the writer.
func EncodeMessagesJSON[M proto.Message](writer io.Writer, messages []M) error {
	for _, message := range messages {
		data, err := protojsonMarshal(message)
		if err != nil {
			return err
		}
		// Append a trailing newline for clean file formatting.
		data = append(data, '\n')
		if _, err := writer.Write(data); err != nil {
			return err
		}
	}
	return nil
}

// ReadMessagesJSON reads newline-separated JSON proto messages from a file.
func ReadMessagesJSON[M proto.Message](filePath string, newMessage func() M) (_ []M, retErr error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer func() {
		retErr = errors.Join(retErr, file.Close())
	}()
	return DecodeMessagesJSON(file, newMessage)
}

// DecodeMessagesJSON reads newline-separated JSON proto messages from the reader.
//
// Blank lines are skipped. Errors name the 1-based line number.
func DecodeMessagesJSON[M proto.Message](reader io.Reader, newMessage func() M) ([]M, error) {
	var messages []M
	scanner := bufio.NewScanner(reader)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		message := newMessage()
		if err := protojsonUnmarshal(line, message); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNumber, err)
		}
		messages = append(messages, message)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return messages, nil
}

// protojsonMarshal marshals a proto message to JSON using proto field names.
func protojsonMarshal(message proto.Message) ([]byte, error) {
	return (protojson.MarshalOptions{UseProtoNames: true}).Marshal(message)
}

// protojsonUnmarshal unmarshals JSON data into a proto message.
func protojsonUnmarshal(data []byte, message proto.Message) error {
	return (protojson.UnmarshalOptions{}).Unmarshal(data, message)
}
