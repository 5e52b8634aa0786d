package service

import "errors"

var (
	// ErrInvalidArgument - некорректный вход (ID не парсится, отрицательная сумма)
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrDeliveryFailure - приёмник ответа вернул ошибку
	ErrDeliveryFailure = errors.New("response delivery failed")
)
