package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strings"
)

// El valor de la cookie no es el token pelado sino "token.firma",
// con firma HMAC-SHA256 sobre el token usando el session secret.
// Una cookie manipulada se descarta sin tocar el store.

// SignToken arma el valor de cookie para un token de sesión.
func SignToken(secret, token string) string {
	return token + "." + signature(secret, token)
}

// ParseToken valida la firma de un valor de cookie y devuelve el token.
// ok=false si el formato o la firma no cierran.
func ParseToken(secret, value string) (string, bool) {
	token, sig, found := strings.Cut(value, ".")
	if !found || token == "" {
		return "", false
	}
	if !hmac.Equal([]byte(sig), []byte(signature(secret, token))) {
		return "", false
	}
	return token, true
}

func signature(secret, token string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(token))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
