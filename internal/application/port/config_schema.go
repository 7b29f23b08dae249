package port

import "github.com/bnema/xiboic/internal/domain/entity"

// ConfigSchemaProvider lists the configuration keys `config schema` documents.
type ConfigSchemaProvider interface {
	// GetSchema returns every key in display order, with defaults filled in.
	GetSchema() []entity.ConfigKeyInfo
}
