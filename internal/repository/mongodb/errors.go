package mongodb

import (
	"context"
	stderrors "errors"

	"go.mongodb.org/mongo-driver/mongo"

	"task-cli/internal/errors"
)

// translateError converts driver errors into structured app errors
func translateError(operation string, endpoint string, err error) error {
	if err == nil {
		return nil
	}
	if stderrors.Is(err, context.DeadlineExceeded) || stderrors.Is(err, context.Canceled) {
		return errors.FromContextError(operation, err)
	}
	if mongo.IsTimeout(err) {
		timeoutErr := errors.NewTimeoutError(operation, nil)
		timeoutErr.Cause = err
		return timeoutErr
	}
	if mongo.IsNetworkError(err) {
		return errors.NewConnectivityError(endpoint, err)
	}
	return errors.NewDatabaseError(operation, err)
}
