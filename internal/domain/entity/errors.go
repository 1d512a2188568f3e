package entity

import "errors"

var (
	// ErrMalformedFilename имя файла содержит меньше трёх частей через "-"
	ErrMalformedFilename = errors.New("malformed filename")

	// ErrUnknownAcquisitionType третья часть имени не GC и не CC
	ErrUnknownAcquisitionType = errors.New("unknown acquisition type")

	// ErrImageDecode изображение не удалось открыть или декодировать
	ErrImageDecode = errors.New("unable to decode image")

	// ErrMissingDirectory каталог с изображениями не задан
	ErrMissingDirectory = errors.New("image directory is not specified")

	// ErrInvalidMeasurement нарушены инварианты измерения
	ErrInvalidMeasurement = errors.New("invalid coverage measurement")
)
