package handler

import (
	"time"

	"github.com/dtroode/spacegame-server/internal/model"
	"google.golang.org/protobuf/types/known/structpb"
)

// stringField reads an optional string member of a callable payload.
// Absent and null members read as "", other kinds are rejected.
func stringField(s *structpb.Struct, name string) (string, error) {
	v, ok := s.GetFields()[name]
	if !ok {
		return "", nil
	}

	switch kind := v.GetKind().(type) {
	case *structpb.Value_StringValue:
		return kind.StringValue, nil
	case *structpb.Value_NullValue:
		return "", nil
	default:
		return "", model.NewValidationError(name, "must be a string")
	}
}

func sessionStruct(session model.Session) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{
		"uid":          session.UserID.String(),
		"accessToken":  session.AccessToken,
		"refreshToken": session.RefreshToken,
	})
}

func profileFields(profile model.Profile) map[string]any {
	return map[string]any{
		"uid":       profile.ID.String(),
		"username":  profile.Username,
		"email":     profile.Email,
		"createdAt": profile.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}
