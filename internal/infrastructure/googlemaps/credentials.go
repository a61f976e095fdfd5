package googlemaps

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"sync"
)

// ErrCredentialFormat - строка учетных данных не соответствует формату id=<id>;key=<key>
var ErrCredentialFormat = errors.New("credential string has an invalid format")

var credentialPattern = regexp.MustCompile(`id=(.+);key=(.+)`)

// Credentials хранит client id и приватный ключ Google Maps for Business.
// Один экземпляр создается при старте и передается по ссылке всем, кто подписывает запросы
type Credentials struct {
	mu         sync.RWMutex
	clientID   string
	privateKey string
}

// NewCredentials создает пустые учетные данные (запросы уходят без подписи)
func NewCredentials() *Credentials {
	return &Credentials{}
}

// ParseCredentialString разбирает строку вида id=<client-id>;key=<private-key>
func ParseCredentialString(s string) (clientID, privateKey string, err error) {
	m := credentialPattern.FindStringSubmatch(s)
	if m == nil {
		return "", "", fmt.Errorf("%w: expected id=<client-id>;key=<private-key>", ErrCredentialFormat)
	}
	return m[1], m[2], nil
}

// SetCredentialString разбирает и применяет строку учетных данных.
// Пустая строка ничего не меняет, при ошибке формата прежние значения сохраняются
func (c *Credentials) SetCredentialString(s string) error {
	if s == "" {
		return nil
	}
	id, key, err := ParseCredentialString(s)
	if err != nil {
		return err
	}
	c.Set(id, key)
	return nil
}

// Set задает client id и приватный ключ
func (c *Credentials) Set(clientID, privateKey string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clientID = clientID
	c.privateKey = privateKey
}

// CredentialString возвращает строку в формате id=<id>;key=<key>
func (c *Credentials) CredentialString() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return "id=" + c.clientID + ";key=" + c.privateKey
}

// ClientID возвращает текущий client id
func (c *Credentials) ClientID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.clientID
}

// Active - подпись включена только когда заданы оба значения
func (c *Credentials) Active() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.clientID != "" && c.privateKey != ""
}

// String не раскрывает ключ, безопасно для логов
func (c *Credentials) String() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.privateKey == "" {
		return "id=" + c.clientID + ";key="
	}
	return "id=" + c.clientID + ";key=***"
}

// SignURL добавляет client и signature к URL запроса.
// URL с уже заданным signature возвращается без изменений; без учетных данных тоже
func (c *Credentials) SignURL(rawURL string) (string, error) {
	c.mu.RLock()
	clientID, privateKey := c.clientID, c.privateKey
	c.mu.RUnlock()

	if clientID == "" || privateKey == "" {
		return rawURL, nil
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse url: %w", err)
	}

	q := u.Query()
	if q.Get("signature") != "" {
		return rawURL, nil
	}
	q.Set("client", clientID)
	u.RawQuery = q.Encode()

	key, err := decodeKey(privateKey)
	if err != nil {
		return "", err
	}

	mac := hmac.New(sha1.New, key)
	mac.Write([]byte(u.EscapedPath() + "?" + u.RawQuery))
	signature := base64.URLEncoding.EncodeToString(mac.Sum(nil))

	return u.String() + "&signature=" + signature, nil
}

// decodeKey принимает ключ в URL-safe base64 с паддингом и без
func decodeKey(privateKey string) ([]byte, error) {
	if key, err := base64.URLEncoding.DecodeString(privateKey); err == nil {
		return key, nil
	}
	key, err := base64.RawURLEncoding.DecodeString(privateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decode private key: %w", err)
	}
	return key, nil
}
