package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxCustomerNameLength  = 100
	MaxCustomerPhoneLength = 20
	MinCustomerPhoneLength = 6
	MaxCourtNameLength     = 100
	MaxSlotsPerReservation = 24
	MaxProofSizeBytes      = 5 << 20 // 5 MB
	MinPasswordLength      = 6
	ReceiptCodeLength      = 8
)

// AllowedImageContentTypes типы изображений, принимаемые для подтверждения оплаты и ассетов арены
var AllowedImageContentTypes = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
}

// Object store namespaces
const (
	BucketPaymentProofs = "payment-proofs"
	BucketArenaAssets   = "arena-assets"
)

// Object name prefixes
const (
	ObjectPrefixProof    = "proof"
	ObjectPrefixLogo     = "logo"
	ObjectPrefixQRIS     = "qris"
	ObjectPrefixCarousel = "carousel"
)
