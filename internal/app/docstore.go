package app

import (
	"github.com/riskibarqy/bet-hub/internal/config"
	pgdocstore "github.com/riskibarqy/bet-hub/internal/infrastructure/docstore/postgres"
	"github.com/riskibarqy/bet-hub/internal/platform/docstore"
	"github.com/riskibarqy/bet-hub/internal/platform/logging"
)

func openDocstore(cfg config.Config, logger *logging.Logger) (docstore.Store, func() error, error) {
	if cfg.DocstoreDriver != config.DocstorePostgres {
		logger.Info("using in-memory document store")
		return docstore.NewMemoryStore(), func() error { return nil }, nil
	}

	db, err := openPostgres(cfg)
	if err != nil {
		return nil, nil, err
	}

	logger.Info("using postgres document store", "db_name", dbNameFromURL(cfg.DBURL))
	return pgdocstore.NewStore(db), db.Close, nil
}
