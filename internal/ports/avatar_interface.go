package ports

import "context"

// AvatarStorage : хранилище файлов аватаров (локальный каталог или S3)
type AvatarStorage interface {
	SaveAvatar(ctx context.Context, fileName string, data []byte) (string, error)
}
