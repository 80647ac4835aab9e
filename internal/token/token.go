package token

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	jwtgo "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"nolimitholdem-server/internal/config"
)

// Issuer issues the seat token
const Issuer = "nolimitholdem-server"

// Audience is the intended seat token audience
const Audience = "nolimitholdem-client"

// TTL is how long a seat token remains valid
const TTL = time.Hour * 24

var secret []byte

type seatClaims struct {
	jwtgo.RegisteredClaims
	Table string `json:"table"`
	Seat  int    `json:"seat"`
}

// LoadSecret will load the signing secret from config
// If none is configured, an ephemeral secret is generated; tokens then
// survive only for the life of the process.
// This method should only be called once.
func LoadSecret() {
	if s := config.Instance().Token.Secret; s != "" {
		secret = []byte(s)
		return
	}

	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}

	secret = []byte(hex.EncodeToString(b))
}

// Sign will sign a seat token for the table and seat
func Sign(tableID string, seat int) (string, error) {
	if secret == nil {
		panic("LoadSecret() not called")
	}

	now := time.Now()
	token := jwtgo.NewWithClaims(jwtgo.SigningMethodHS256, seatClaims{
		RegisteredClaims: jwtgo.RegisteredClaims{
			Audience:  jwtgo.ClaimStrings{Audience},
			ID:        uuid.New().String(),
			IssuedAt:  jwtgo.NewNumericDate(now),
			ExpiresAt: jwtgo.NewNumericDate(now.Add(TTL)),
			Issuer:    Issuer,
		},
		Table: tableID,
		Seat:  seat,
	})

	return token.SignedString(secret)
}

// ValidSeat will validate a signed seat token and return its table ID and seat
func ValidSeat(signedString string) (string, int, error) {
	if secret == nil {
		panic("LoadSecret() not called")
	}

	token, err := jwtgo.ParseWithClaims(signedString, &seatClaims{}, func(token *jwtgo.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwtgo.SigningMethodHMAC); !ok {
			return nil, errors.New("expected HS256 signing method")
		}

		return secret, nil
	})

	if err != nil {
		return "", 0, err
	}

	claims, ok := token.Claims.(*seatClaims)
	if !ok {
		return "", 0, fmt.Errorf("expected seatClaims, got %T", token.Claims)
	}

	if !containsAudience(claims.Audience, Audience) {
		return "", 0, errors.New("invalid audience")
	}

	if claims.Issuer != Issuer {
		return "", 0, errors.New("invalid issuer")
	}

	return claims.Table, claims.Seat, nil
}

func containsAudience(audiences jwtgo.ClaimStrings, target string) bool {
	for _, aud := range audiences {
		if aud == target {
			return true
		}
	}
	return false
}
