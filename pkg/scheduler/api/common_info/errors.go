// Copyright 2025 NVIDIA CORPORATION
// SPDX-License-Identifier: Apache-2.0

package common_info

import (
	"errors"
	"fmt"
)

const (
	InvalidQueueReferenceKind = "InvalidQueueReference"
	UnknownLabelKind          = "UnknownLabel"
	InternalErrorKind         = "InternalError"
)

var (
	ErrInvalidQueueReference = errors.New("invalid queue reference")
	ErrUnknownLabel          = errors.New("unknown node label")
)

// QueueError reports the queue and label a snapshot failed on.
type QueueError struct {
	QueueName string
	Label     string
	Err       error
}

func NewQueueError(queueName, label string, err error) *QueueError {
	return &QueueError{QueueName: queueName, Label: label, Err: err}
}

func (e *QueueError) Error() string {
	if e.QueueName == "" {
		return fmt.Sprintf("label <%s>: %v", e.Label, e.Err)
	}
	return fmt.Sprintf("queue <%s>, label <%s>: %v", e.QueueName, e.Label, e.Err)
}

func (e *QueueError) Unwrap() error {
	return e.Err
}

// ErrorKind maps an error to its taxonomy name, as exposed to API clients.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrUnknownLabel):
		return UnknownLabelKind
	case errors.Is(err, ErrInvalidQueueReference):
		return InvalidQueueReferenceKind
	default:
		return InternalErrorKind
	}
}

// FailedQueueName returns the name of the queue the error was raised for, if any.
func FailedQueueName(err error) string {
	var queueErr *QueueError
	if errors.As(err, &queueErr) {
		return queueErr.QueueName
	}
	return ""
}
