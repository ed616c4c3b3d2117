package vision

import "errors"

var (
	// ErrImageLoad изображение отсутствует, не декодируется или пустое
	ErrImageLoad = errors.New("image load failed")

	// ErrNoInterfaces ни одна комбинация границ не прошла порог
	ErrNoInterfaces = errors.New("no interfaces detected")
)
