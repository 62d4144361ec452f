package errors

import (
	"encoding/json"
	"errors"

	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// ToGRPCError converts err for return from a gRPC handler. Errors that
// already carry a status pass through; plain errors become Internal.
// Meta travels as a google.protobuf.Struct detail.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	var coded *Error
	if !errors.As(err, &coded) {
		return status.Error(CodeInternal.GRPCCode(), err.Error())
	}

	st := status.New(coded.Code.GRPCCode(), coded.Message)
	if details := metaToStruct(coded.Meta); details != nil {
		if withDetails, detailErr := st.WithDetails(details); detailErr == nil {
			st = withDetails
		}
	}
	return st.Err()
}

// FromGRPCError recovers an *Error from a status returned by the server.
// Non-status errors are returned unchanged.
func FromGRPCError(err error) error {
	st, ok := status.FromError(err)
	if err == nil || !ok {
		return err
	}

	coded := New(codeFromGRPC(st.Code()), st.Message())
	for _, detail := range st.Details() {
		if details, ok := detail.(*structpb.Struct); ok {
			coded.Meta = details.AsMap()
			break
		}
	}
	return coded
}

// metaToStruct normalizes metadata through JSON so that typed values such
// as map[string][]string are accepted by structpb.
func metaToStruct(meta map[string]any) *structpb.Struct {
	if len(meta) == 0 {
		return nil
	}

	raw, err := json.Marshal(meta)
	if err != nil {
		return nil
	}

	var normalized map[string]any
	if err := json.Unmarshal(raw, &normalized); err != nil {
		return nil
	}

	details, err := structpb.NewStruct(normalized)
	if err != nil {
		return nil
	}
	return details
}

// ValidationFields extracts the per-field messages attached by a
// ValidationBuilder, whether err came straight from Build or back across
// gRPC through FromGRPCError.
func ValidationFields(err error) map[string][]string {
	raw, ok := GetMeta(err)[metaValidationErrors]
	if !ok {
		return nil
	}

	switch fields := raw.(type) {
	case map[string][]string:
		return fields
	case map[string]any:
		out := make(map[string][]string, len(fields))
		for field, msgs := range fields {
			list, _ := msgs.([]any)
			for _, msg := range list {
				if s, ok := msg.(string); ok {
					out[field] = append(out[field], s)
				}
			}
		}
		return out
	default:
		return nil
	}
}
