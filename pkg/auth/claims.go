package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/printworks/printshop-backend/pkg/enums"
)

// AccessTokenPayload captures the data available when minting a JWT.
// OperatorRole is set only for staff tokens; customer tokens carry IsBroker.
type AccessTokenPayload struct {
	AccountID    uuid.UUID
	IsBroker     bool
	OperatorRole *enums.OperatorRole
	JTI          string
}

// AccessTokenClaims represents the typed JWT issued to clients.
type AccessTokenClaims struct {
	AccountID    uuid.UUID           `json:"account_id"`
	IsBroker     bool                `json:"is_broker"`
	OperatorRole *enums.OperatorRole `json:"operator_role,omitempty"`
	jwt.RegisteredClaims
}

// IsOperator reports whether the token belongs to a staff user.
func (c *AccessTokenClaims) IsOperator() bool {
	return c.OperatorRole != nil && c.OperatorRole.IsValid()
}
