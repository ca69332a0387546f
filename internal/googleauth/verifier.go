package googleauth

import (
	"context"
	"fmt"

	"google.golang.org/api/idtoken"
)

// Identity - атрибуты, извлеченные из проверенного Google ID-токена
type Identity struct {
	Email   string
	Name    string
	Picture string
}

// Verifier проверяет Google ID-токен и возвращает утвержденную
// личность. Интерфейс нужен, чтобы в тестах подменять внешний вызов.
type Verifier interface {
	Verify(ctx context.Context, credential string) (*Identity, error)
}

// GoogleVerifier - боевая реализация поверх googleapis idtoken.
// Аудитория (client ID) фиксируется из конфигурации.
type GoogleVerifier struct {
	clientID string
}

func NewGoogleVerifier(clientID string) *GoogleVerifier {
	return &GoogleVerifier{clientID: clientID}
}

// Verify проверяет подпись и аудиторию токена
func (v *GoogleVerifier) Verify(ctx context.Context, credential string) (*Identity, error) {
	payload, err := idtoken.Validate(ctx, credential, v.clientID)
	if err != nil {
		return nil, fmt.Errorf("google id token validation failed: %w", err)
	}

	identity := &Identity{}
	if email, ok := payload.Claims["email"].(string); ok {
		identity.Email = email
	}
	if name, ok := payload.Claims["name"].(string); ok {
		identity.Name = name
	}
	if picture, ok := payload.Claims["picture"].(string); ok {
		identity.Picture = picture
	}

	if identity.Email == "" {
		return nil, fmt.Errorf("google id token has no email claim")
	}
	return identity, nil
}
