package metacache

import (
	"context"
	"database/sql"

	"github.com/efficientgo/core/errors"
)

// Source lists every attachment known to the relational store.
type Source interface {
	Attachments(ctx context.Context) ([]FileMetadata, error)
}

const attachmentsQuery = `SELECT "id", "filename", "filepath", "mimetype", "size", "extension", "productId", "folderId", "createdAt" FROM "attachments"`

// SQLSource reads the attachments table.
type SQLSource struct {
	DB *sql.DB
}

// Attachments reads every row of the attachments table.
func (s SQLSource) Attachments(ctx context.Context) ([]FileMetadata, error) {
	rows, err := s.DB.QueryContext(ctx, attachmentsQuery)
	if err != nil {
		return nil, errors.Wrap(err, "query attachments")
	}
	defer rows.Close()

	var files []FileMetadata
	for rows.Next() {
		var (
			meta FileMetadata

			mimetype  sql.NullString
			size      sql.NullInt64
			extension sql.NullString
			folderID  sql.NullString
		)

		if err := rows.Scan(
			&meta.FileID,
			&meta.Filename,
			&meta.Filepath,
			&mimetype,
			&size,
			&extension,
			&meta.ProductID,
			&folderID,
			&meta.UploadedAt,
		); err != nil {
			return nil, errors.Wrap(err, "scan attachment")
		}

		meta.Mimetype = mimetype.String
		meta.Size = size.Int64
		meta.Extension = extension.String
		meta.FolderID = folderID.String

		files = append(files, meta)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate attachments")
	}

	return files, nil
}
