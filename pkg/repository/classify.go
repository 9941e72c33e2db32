package repository

import (
	"errors"
	"fmt"

	"github.com/fivetwenty-io/rmapi/pkg/rmapi"
)

// User-facing failure messages.
const (
	MessageNoConnection    = "No internet connection"
	MessageUnexpectedError = "Unexpected error occurred"

	HTTPErrorFormat   = "HTTP error: %d"
	ServerErrorFormat = "Server error: %d"
)

// Operation names a repository operation for classification and logging.
type Operation string

const (
	OperationList Operation = "list_characters"
	OperationGet  Operation = "get_character"
)

// Messages holds the text used for each failure kind.
type Messages struct {
	NoConnection string
	Unexpected   string
	// StatusFormat maps an operation to a format string taking the HTTP status.
	StatusFormat map[Operation]string
}

// DefaultMessages uses the same wording for both operations.
func DefaultMessages() Messages {
	return Messages{
		NoConnection: MessageNoConnection,
		Unexpected:   MessageUnexpectedError,
		StatusFormat: map[Operation]string{
			OperationList: HTTPErrorFormat,
			OperationGet:  HTTPErrorFormat,
		},
	}
}

// Classify turns a transport failure into a user-facing message.
func (m Messages) Classify(op Operation, err error) string {
	connErr := &rmapi.ConnectivityError{}
	if errors.As(err, &connErr) {
		return m.NoConnection
	}

	protoErr := &rmapi.ProtocolError{}
	if errors.As(err, &protoErr) {
		format, ok := m.StatusFormat[op]
		if !ok {
			format = HTTPErrorFormat
		}

		return fmt.Sprintf(format, protoErr.StatusCode)
	}

	return m.Unexpected
}

// Classify applies DefaultMessages.
func Classify(op Operation, err error) string {
	return DefaultMessages().Classify(op, err)
}
