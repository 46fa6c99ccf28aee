// Package jwt реализует выдачу и проверку токенов идентичности с e-mail в claims.
//
// Maker определяет интерфейс для создания и проверки токенов.
// MakerImpl — конкретная реализация на секретном ключе и сроке жизни.
package jwt

import (
	"time"
)

// Maker описывает интерфейс для генерации и парсинга токенов идентичности.
type Maker interface {
	// GenerateToken выдает токен с e-mail пользователя в claims.
	GenerateToken(email string) (string, error)
	// ParseToken возвращает *Claims, если подпись и срок действия корректны.
	ParseToken(tokenStr string) (*Claims, error)
}

// MakerImpl реализует интерфейс Maker с использованием секретного ключа
// и времени жизни токена (TTL).
type MakerImpl struct {
	secretKey string        // Секретный ключ для подписи токенов.
	tokenTTL  time.Duration // Время жизни токена.
}

// NewMaker создаёт новый экземпляр MakerImpl на основе секретного ключа и TTL.
func NewMaker(secretKey string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
	}
}
