package resettoken

import (
	"testing"
	"time"
)

func TestGenerate(t *testing.T) {
	token, err := Generate("user-123", 1*time.Hour, "test-secret-key")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if token == "" {
		t.Error("Generate() returned empty token")
	}
}

func TestValidate(t *testing.T) {
	secret := "validation-test-secret"

	validToken, _ := Generate("test-user-id", 1*time.Hour, secret)
	expiredToken, _ := Generate("test-user-id", -1*time.Hour, secret)

	tests := []struct {
		name    string
		token   string
		secret  string
		wantErr bool
	}{
		{
			name:    "valid token",
			token:   validToken,
			secret:  secret,
			wantErr: false,
		},
		{
			name:    "expired token",
			token:   expiredToken,
			secret:  secret,
			wantErr: true,
		},
		{
			name:    "wrong secret",
			token:   validToken,
			secret:  "wrong-secret",
			wantErr: true,
		},
		{
			name:    "malformed token",
			token:   "invalid.token.format",
			secret:  secret,
			wantErr: true,
		},
		{
			name:    "empty token",
			token:   "",
			secret:  secret,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := Validate(tt.token, tt.secret)

			if tt.wantErr {
				if err == nil {
					t.Error("Validate() expected error but got none")
				}
				return
			}

			if err != nil {
				t.Errorf("Validate() unexpected error = %v", err)
				return
			}

			if claims.UserID != "test-user-id" {
				t.Errorf("Validate() UserID = %s, want test-user-id", claims.UserID)
			}

			if claims.Subject != "password-reset" {
				t.Errorf("Validate() Subject = %s, want password-reset", claims.Subject)
			}
		})
	}
}
