package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// FormStep шаг формы бронирования
type FormStep string

const (
	StepCollectingDetails    FormStep = "collecting-details"
	StepAwaitingPaymentProof FormStep = "awaiting-payment-proof"
	StepSubmitted            FormStep = "submitted"
)

// ReservationDetails данные первого шага формы
type ReservationDetails struct {
	CourtID       int64
	Date          time.Time
	SlotIDs       []int64
	CustomerName  string
	CustomerPhone string
}

// PaymentProof изображение подтверждения оплаты
type PaymentProof struct {
	FileName    string
	ContentType string
	Data        []byte
}

// Extension расширение файла по типу содержимого
func (p *PaymentProof) Extension() string {
	return AllowedImageContentTypes[p.ContentType]
}

// ReservationForm форма бронирования: collecting-details -> awaiting-payment-proof -> submitted
type ReservationForm struct {
	step    FormStep
	details ReservationDetails
	proof   *PaymentProof
}

// NewReservationForm создает форму на шаге ввода данных
func NewReservationForm() *ReservationForm {
	return &ReservationForm{step: StepCollectingDetails}
}

// Step текущий шаг
func (f *ReservationForm) Step() FormStep {
	return f.step
}

// Details введённые данные
func (f *ReservationForm) Details() ReservationDetails {
	return f.details
}

// Proof прикреплённое подтверждение оплаты
func (f *ReservationForm) Proof() *PaymentProof {
	return f.proof
}

// SubmitDetails валидирует данные и переводит форму на шаг оплаты
func (f *ReservationForm) SubmitDetails(d ReservationDetails) error {
	if f.step != StepCollectingDetails {
		return fmt.Errorf("%w: details already submitted", ErrFormStep)
	}
	d.CustomerName = strings.TrimSpace(d.CustomerName)
	d.CustomerPhone = strings.TrimSpace(d.CustomerPhone)
	if err := validateDetails(d); err != nil {
		return err
	}
	f.details = d
	f.step = StepAwaitingPaymentProof
	return nil
}

// Back возвращает форму к вводу данных, сбрасывая прикреплённый файл
func (f *ReservationForm) Back() {
	if f.step == StepAwaitingPaymentProof {
		f.step = StepCollectingDetails
		f.proof = nil
	}
}

// AttachProof прикрепляет подтверждение оплаты
func (f *ReservationForm) AttachProof(p PaymentProof) error {
	if f.step != StepAwaitingPaymentProof {
		return fmt.Errorf("%w: proof expected only after details", ErrFormStep)
	}
	if err := validateProof(&p); err != nil {
		return err
	}
	f.proof = &p
	return nil
}

// Submit завершает форму; требуется прикреплённое подтверждение оплаты
func (f *ReservationForm) Submit() (ReservationDetails, *PaymentProof, error) {
	if f.step != StepAwaitingPaymentProof {
		return ReservationDetails{}, nil, fmt.Errorf("%w: form is at %s", ErrFormStep, f.step)
	}
	if f.proof == nil {
		return ReservationDetails{}, nil, fmt.Errorf("%w: payment proof is required", ErrInvalidProof)
	}
	f.step = StepSubmitted
	return f.details, f.proof, nil
}

func validateDetails(d ReservationDetails) error {
	if d.CourtID <= 0 {
		return fmt.Errorf("%w: courtID must be positive", ErrInvalidDetails)
	}
	if d.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidDetails)
	}
	if len(d.SlotIDs) == 0 {
		return fmt.Errorf("%w: at least one slot must be selected", ErrInvalidDetails)
	}
	if len(d.SlotIDs) > MaxSlotsPerReservation {
		return fmt.Errorf("%w: too many slots selected", ErrInvalidDetails)
	}
	seen := make(map[int64]struct{}, len(d.SlotIDs))
	for _, id := range d.SlotIDs {
		if id <= 0 {
			return fmt.Errorf("%w: slot id must be positive", ErrInvalidDetails)
		}
		if _, ok := seen[id]; ok {
			return fmt.Errorf("%w: slot id=%d selected twice", ErrInvalidDetails, id)
		}
		seen[id] = struct{}{}
	}
	if d.CustomerName == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidDetails)
	}
	if len([]rune(d.CustomerName)) > MaxCustomerNameLength {
		return fmt.Errorf("%w: customer name is too long", ErrInvalidDetails)
	}
	return validatePhone(d.CustomerPhone)
}

func validatePhone(phone string) error {
	if len(phone) < MinCustomerPhoneLength || len(phone) > MaxCustomerPhoneLength {
		return fmt.Errorf("%w: phone must be %d-%d characters", ErrInvalidDetails, MinCustomerPhoneLength, MaxCustomerPhoneLength)
	}
	for _, r := range phone {
		if !unicode.IsDigit(r) && !strings.ContainsRune("+-() ", r) {
			return fmt.Errorf("%w: phone contains invalid character %q", ErrInvalidDetails, r)
		}
	}
	return nil
}

func validateProof(p *PaymentProof) error {
	if len(p.Data) == 0 {
		return fmt.Errorf("%w: file is empty", ErrInvalidProof)
	}
	if len(p.Data) > MaxProofSizeBytes {
		return fmt.Errorf("%w: file exceeds %d bytes", ErrInvalidProof, MaxProofSizeBytes)
	}
	if _, ok := AllowedImageContentTypes[p.ContentType]; !ok {
		return fmt.Errorf("%w: unsupported content type %q", ErrInvalidProof, p.ContentType)
	}
	return nil
}

// FillFromSession подставляет имя и телефон авторизованного клиента, если они не введены
func (d ReservationDetails) FillFromSession(s *Session) ReservationDetails {
	if s == nil {
		return d
	}
	if strings.TrimSpace(d.CustomerName) == "" {
		d.CustomerName = s.FullName
	}
	if strings.TrimSpace(d.CustomerPhone) == "" {
		d.CustomerPhone = s.Phone
	}
	return d
}
