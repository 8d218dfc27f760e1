package domain

import "time"

// ArenaProfile единственная запись с брендингом арены и реквизитами оплаты
type ArenaProfile struct {
	Name      string
	Address   string
	LogoURL   string
	BankInfo  string // инструкции по оплате
	QRISURL   string
	UpdatedAt time.Time
}

// CarouselImage изображение галереи
type CarouselImage struct {
	ID        int64
	ImageURL  string
	CreatedAt time.Time
}

// PaymentInstructions реквизиты, показываемые на шаге оплаты
type PaymentInstructions struct {
	BankInfo string
	QRISURL  string
}

// PaymentInstructions реквизиты оплаты из профиля
func (p *ArenaProfile) PaymentInstructions() PaymentInstructions {
	return PaymentInstructions{BankInfo: p.BankInfo, QRISURL: p.QRISURL}
}
