package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/saase/requesthub/internal/domain/request"
	vo "github.com/saase/requesthub/internal/domain/request/valueobjects"
)

const draftAudience = "request-draft"

type draftClaims struct {
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	Company      string `json:"company,omitempty"`
	Phone        string `json:"phone,omitempty"`
	RequestType  string `json:"request_type"`
	ProjectTitle string `json:"project_title"`
	Description  string `json:"description"`
	Timeline     string `json:"timeline,omitempty"`
	Budget       string `json:"budget,omitempty"`
	Priority     string `json:"priority,omitempty"`
	jwt.RegisteredClaims
}

// DraftCodec turns a request draft into a signed continuation token and back.
// Expiry is carried in the token's exp claim.
type DraftCodec struct {
	secret []byte
}

func NewDraftCodec(secret string) *DraftCodec {
	return &DraftCodec{secret: []byte(secret)}
}

func (c *DraftCodec) EncodeDraft(d *request.Draft) (string, error) {
	claims := &draftClaims{
		FullName:     d.Details.FullName,
		Email:        d.Details.Email,
		Company:      d.Details.Company,
		Phone:        d.Details.Phone,
		RequestType:  d.Details.RequestType,
		ProjectTitle: d.Details.ProjectTitle,
		Description:  d.Details.Description,
		Timeline:     d.Details.Timeline,
		Budget:       d.Details.Budget,
		Priority:     d.Details.Priority.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Audience:  jwt.ClaimStrings{draftAudience},
			IssuedAt:  jwt.NewNumericDate(d.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(d.ExpiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign draft token: %w", err)
	}
	return signed, nil
}

func (c *DraftCodec) DecodeDraft(tokenString string) (*request.Draft, error) {
	token, err := jwt.ParseWithClaims(tokenString, &draftClaims{}, func(token *jwt.Token) (interface{}, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithAudience(draftAudience),
		jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("failed to parse draft token: %w", err)
	}

	claims, ok := token.Claims.(*draftClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid draft token")
	}

	var priority vo.Priority
	if claims.Priority != "" {
		priority, err = vo.NewPriority(claims.Priority)
		if err != nil {
			return nil, fmt.Errorf("invalid draft priority: %w", err)
		}
	}

	d := &request.Draft{
		Details: request.Details{
			FullName:     claims.FullName,
			Email:        claims.Email,
			Company:      claims.Company,
			Phone:        claims.Phone,
			RequestType:  claims.RequestType,
			ProjectTitle: claims.ProjectTitle,
			Description:  claims.Description,
			Timeline:     claims.Timeline,
			Budget:       claims.Budget,
			Priority:     priority,
		},
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		d.IssuedAt = claims.IssuedAt.Time
	}
	return d, nil
}
