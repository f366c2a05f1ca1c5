package db

import (
	"github.com/Opers-Link/apolino-ai-assist-sub000/internal/config"
	"gorm.io/gorm"
)

// GetDB abre a conexão com o Postgres a partir da configuração injetada.
func GetDB(cfg config.Config) (*gorm.DB, error) {
	return ConnectDataBase(cfg.DBPorta, cfg.DBHost, cfg.DBNome, cfg.DBSecretID, cfg.DBSSLDesativar)
}
