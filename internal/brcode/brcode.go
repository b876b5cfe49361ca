// Package brcode builds static Pix "copia e cola" payloads (EMV QR Code
// merchant-presented format, as published by the Banco Central do Brasil).
package brcode

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	pixGUI          = "br.gov.bcb.pix"
	currencyBRL     = "986"
	countryBR       = "BR"
	maxNameLen      = 25
	maxCityLen      = 15
	maxTxIDLen      = 25
	maxDescription  = 72
	defaultTxID     = "***"
	crcFieldPrefix  = "6304"
	categoryUnknown = "0000"
)

type Payload struct {
	Key          string
	Description  string
	MerchantName string
	MerchantCity string
	Amount       decimal.Decimal
	TxID         string
}

// Build renders the payload string, CRC included.
func (p Payload) Build() (string, error) {
	key := strings.TrimSpace(p.Key)
	if key == "" {
		return "", fmt.Errorf("pix key is required")
	}
	if p.Amount.IsNegative() {
		return "", fmt.Errorf("amount must not be negative")
	}

	account := field("00", pixGUI) + field("01", key)
	if desc := clean(p.Description, maxDescription); desc != "" {
		account += field("02", desc)
	}

	var b strings.Builder
	b.WriteString(field("00", "01"))
	b.WriteString(field("26", account))
	b.WriteString(field("52", categoryUnknown))
	b.WriteString(field("53", currencyBRL))
	if p.Amount.IsPositive() {
		b.WriteString(field("54", p.Amount.StringFixed(2)))
	}
	b.WriteString(field("58", countryBR))
	b.WriteString(field("59", clean(p.MerchantName, maxNameLen)))
	b.WriteString(field("60", clean(p.MerchantCity, maxCityLen)))
	b.WriteString(field("62", field("05", TxID(p.TxID))))
	b.WriteString(crcFieldPrefix)

	payload := b.String()
	return payload + fmt.Sprintf("%04X", CRC16(payload)), nil
}

// TxID keeps only ASCII letters and digits, truncated to the 25 chars the
// format allows. An empty result becomes "***".
func TxID(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
		}
		if b.Len() == maxTxIDLen {
			break
		}
	}
	if b.Len() == 0 {
		return defaultTxID
	}
	return b.String()
}

// CRC16 is CRC-16/CCITT-FALSE (poly 0x1021, init 0xFFFF).
func CRC16(s string) uint16 {
	crc := uint16(0xFFFF)
	for i := 0; i < len(s); i++ {
		crc ^= uint16(s[i]) << 8
		for bit := 0; bit < 8; bit++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}

func field(id, value string) string {
	return fmt.Sprintf("%s%02d%s", id, len(value), value)
}

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// clean drops accents and anything outside printable ASCII, then truncates.
func clean(s string, max int) string {
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		out = s
	}
	var b strings.Builder
	for _, r := range strings.TrimSpace(out) {
		if r >= 0x20 && r < 0x7F {
			b.WriteRune(r)
		}
		if b.Len() == max {
			break
		}
	}
	return b.String()
}
