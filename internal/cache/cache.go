package cache

import "time"

// Cache é a interface mínima usada para guardar a tabela de taxas ativas
// por um TTL curto. Nunca guarda resultados de simulação.
type Cache interface {
	Obter(chave string) (string, bool)
	Definir(chave, valor string, ttl time.Duration) error
}
