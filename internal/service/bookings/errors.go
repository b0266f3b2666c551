package bookings

import "errors"

// Ошибки двух видов: "не найдено" (неизвестная сущность или отсутствие
// права видеть/решать - наследуемое решение исходного дизайна) и
// "нарушение правила" (плохой интервал, недопустимый переход статуса).
var (
	// ErrUserNotFound возвращается, когда вызывающий пользователь не найден
	ErrUserNotFound = errors.New("user not found")

	// ErrItemNotFound возвращается, когда вещь не найдена
	ErrItemNotFound = errors.New("item not found")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrOwnerBooking возвращается при попытке владельца забронировать свою вещь
	ErrOwnerBooking = errors.New("item cannot be booked by its owner")

	// ErrSelfApprove возвращается при попытке бронирующего подтвердить свое бронирование
	ErrSelfApprove = errors.New("only the item owner may approve a booking")

	// ErrAccessDenied возвращается, когда вызывающий не бронирующий и не владелец
	ErrAccessDenied = errors.New("only the owner or the booker may view this booking")

	// ErrInvalidTimeRange возвращается, когда начало интервала не раньше конца
	ErrInvalidTimeRange = errors.New("start time cannot be after end time")

	// ErrItemUnavailable возвращается, когда вещь недоступна для бронирования
	ErrItemUnavailable = errors.New("item already booked")

	// ErrBookingExpired возвращается, когда время бронирования уже истекло
	ErrBookingExpired = errors.New("booking time has expired")

	// ErrDecisionAlreadyMade возвращается при повторном решении по бронированию
	ErrDecisionAlreadyMade = errors.New("decision already made on a non-new booking")

	// ErrBookingCanceled возвращается при попытке решения по отмененному бронированию
	ErrBookingCanceled = errors.New("booking was canceled")

	// ErrNotOwner возвращается, когда решение принимает посторонний пользователь
	ErrNotOwner = errors.New("only the item owner may decide on a booking")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings service: internal error")
)
