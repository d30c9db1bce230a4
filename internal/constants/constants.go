package constants

import "time"

var APIConfig = struct {
	DefaultBaseURL   string
	DefaultTimeout   time.Duration
	DefaultUserAgent string
}{
	DefaultBaseURL:   "https://super-mario-bros-character-api.onrender.com/api/",
	DefaultTimeout:   10 * time.Second,
	DefaultUserAgent: "character-lookup-go/1.0",
}

// Placeholder images differ in size between the detail card and history cards.
var Placeholders = struct {
	Detail  string
	History string
}{
	Detail:  "https://via.placeholder.com/120?text=IMAGEM+N/A",
	History: "https://via.placeholder.com/80?text=IMAGEM+N/A",
}

var Labels = struct {
	NotAvailable    string
	UnknownName     string
	Origin          string
	Strength        string
	StrengthPrimary string
	HistoryHeader   string
	SearchButton    string
	SearchHint      string
	Searching       string
}{
	NotAvailable:    "N/A",
	UnknownName:     "Desconhecido",
	Origin:          "Primeira Aparição",
	Strength:        "Habilidade",
	StrengthPrimary: "Habilidade Principal",
	HistoryHeader:   "Personagens Pesquisados (%d)",
	SearchButton:    "Buscar",
	SearchHint:      "Digite o nome de um personagem (ex: Mario)",
	Searching:       "Buscando...",
}

var Messages = struct {
	EmptyTerm      string
	NotFound       string
	NotFoundPrefix string
	NotFoundSuffix string
}{
	EmptyTerm:      "Por favor, digite o nome de um personagem (ex: Mario).",
	NotFound:       "Opa! Não encontramos o personagem \"%s\" no Reino do Cogumelo. Verifique a ortografia.",
	NotFoundPrefix: "Opa! Não encontramos o personagem",
	NotFoundSuffix: "no Reino do Cogumelo. Verifique a ortografia.",
}

var ServerConfig = struct {
	SessionCookie   string
	DefaultAddr     string
	SessionTTL      time.Duration
	ShutdownTimeout time.Duration
	JanitorInterval time.Duration
	MaxFormBytes    int64
}{
	SessionCookie:   "lookup_session",
	DefaultAddr:     ":8080",
	SessionTTL:      30 * time.Minute,
	ShutdownTimeout: 10 * time.Second,
	JanitorInterval: time.Minute,
	MaxFormBytes:    4 << 10,
}

var StringLimits = struct {
	CardField int
}{
	CardField: 60,
}
