package config

import (
	"context"
	migration "daidokoro-note/cmd/database/migrate"
	"daidokoro-note/internal/utils"
	"daidokoro-note/internal/utils/storage"
	"daidokoro-note/pkg/kv"
	"fmt"

	"github.com/gofiber/fiber/v2/log"
)

const (
	StoreMemory   = "memory"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
	StoreS3       = "s3"
)

// NewStore builds the key-value store selected by STORE_DRIVER and returns it
// with the driver name. The default is an in-process memory store.
func NewStore(ctx context.Context) (kv.KVRepository, string, error) {
	driver := utils.GetConfigOrDefault("STORE_DRIVER", StoreMemory)

	switch driver {
	case StoreMemory:
		log.Warn("using in-memory store: data is lost on restart")
		return kv.NewMemoryKVRepository(), driver, nil

	case StoreSQLite, StorePostgres:
		db, err := ConnectDB(driver)
		if err != nil {
			return nil, driver, err
		}
		if err := migration.Migrate(db); err != nil {
			return nil, driver, err
		}
		return kv.NewGormKVRepository(db), driver, nil

	case StoreS3:
		s3, err := storage.NewAwsS3(ctx)
		if err != nil {
			return nil, driver, err
		}
		return kv.NewS3KVRepository(s3, utils.GetConfig("AWS_S3_PREFIX")), driver, nil

	default:
		return nil, driver, fmt.Errorf("unknown STORE_DRIVER %q", driver)
	}
}
