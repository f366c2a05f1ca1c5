package config

import (
	"os"
	"strconv"
	"time"
)

// Config reúne toda a configuração do serviço lida do ambiente.
// Passada explicitamente aos construtores; nenhum pacote lê env por conta própria.
type Config struct {
	Porta string

	DBHost         string
	DBPorta        uint
	DBNome         string
	DBSecretID     string
	DBSSLDesativar bool

	RedisAddr string
	CacheTTL  time.Duration

	JWTSecret string

	// Webhook opcional chamado quando uma simulação legítima não retorna banco algum.
	WebhookSemResultadoURL string
}

// Carregar monta a Config a partir das variáveis de ambiente (com defaults).
func Carregar() Config {
	porta := os.Getenv("PORT")
	if porta == "" {
		porta = "8080"
	}

	dbPorta, err := strconv.ParseUint(os.Getenv("DB_PORT"), 10, 32)
	if err != nil {
		dbPorta = 5432
	}

	ttl := 60 * time.Second
	if s := os.Getenv("CACHE_TTL_SECONDS"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			ttl = time.Duration(v) * time.Second
		}
	}

	return Config{
		Porta:                  porta,
		DBHost:                 os.Getenv("DB_HOST"),
		DBPorta:                uint(dbPorta),
		DBNome:                 os.Getenv("DB_NAME"),
		DBSecretID:             os.Getenv("DB_SECRET_ID"),
		DBSSLDesativar:         os.Getenv("DB_SSL_MODE_DISABLE") == "true",
		RedisAddr:              os.Getenv("REDIS_ADDR"),
		CacheTTL:               ttl,
		JWTSecret:              os.Getenv("JWT_SECRET"),
		WebhookSemResultadoURL: os.Getenv("WEBHOOK_SEM_RESULTADO_URL"),
	}
}
