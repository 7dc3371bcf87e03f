package contracts

import (
	"context"
	"healthpilot-service/internal/pkg/dto/responses"
	"io"
)

type EHRImportUsecase interface {
	ImportText(ctx context.Context, sessionData string, rawJSON string) (*responses.EHRImport, error)
	ImportFile(ctx context.Context, sessionData string, filename string, file io.Reader, size int64) (*responses.EHRImport, error)
}
