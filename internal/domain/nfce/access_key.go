// Package nfce: cálculo da chave de acesso da NFC-e (modelo 65) conforme o
// layout nacional da NF-e. Concatenação de 43 dígitos em ordem estrita mais um
// dígito verificador módulo 11.
package nfce

import (
	"fmt"
	"regexp"
	"time"
)

// Modelo fiscal da NFC-e na chave de acesso.
const ModelNFCe = "65"

var digitsOnly = regexp.MustCompile(`^[0-9]+$`)

// KeyParams contém os dados para montar a chave de acesso na ordem exigida
// pelo layout: cUF + AAMM + CNPJ + mod + série + nNF + tpEmis + cNF + cDV.
type KeyParams struct {
	UFCode       string    // código IBGE da UF do emitente (2 dígitos, ex. "35" = SP)
	IssuedAt     time.Time // data de emissão; vira AAMM na chave
	CNPJ         string    // CNPJ do emitente, somente dígitos (14)
	Series       int       // série de emissão (0–999)
	Number       int       // nNF, número sequencial (1–999999999)
	EmissionType string    // tpEmis: "1" normal, "9" contingência off-line
	Code         string    // cNF, código numérico de 8 dígitos que compõe a chave
}

// KeyBuilder monta e valida chaves de acesso NFC-e.
type KeyBuilder struct{}

// NewKeyBuilder cria o serviço.
func NewKeyBuilder() *KeyBuilder {
	return &KeyBuilder{}
}

// Build gera a chave de acesso completa (44 dígitos) a partir dos parâmetros.
// Montos numéricos são preenchidos com zeros à esquerda na largura fixa de
// cada campo; o DV módulo 11 é calculado sobre os 43 dígitos resultantes.
func (b *KeyBuilder) Build(p *KeyParams) (string, error) {
	if p == nil {
		return "", fmt.Errorf("nfce: KeyParams é obrigatório")
	}
	if len(p.UFCode) != 2 || !digitsOnly.MatchString(p.UFCode) {
		return "", fmt.Errorf("nfce: UFCode deve ter 2 dígitos")
	}
	if len(p.CNPJ) != 14 || !digitsOnly.MatchString(p.CNPJ) {
		return "", fmt.Errorf("nfce: CNPJ deve ter 14 dígitos")
	}
	if p.IssuedAt.IsZero() {
		return "", fmt.Errorf("nfce: IssuedAt é obrigatório")
	}
	if p.Series < 0 || p.Series > 999 {
		return "", fmt.Errorf("nfce: série fora do intervalo 0–999")
	}
	if p.Number < 1 || p.Number > 999999999 {
		return "", fmt.Errorf("nfce: número fora do intervalo 1–999999999")
	}
	if p.EmissionType == "" {
		p.EmissionType = "1"
	}
	if len(p.EmissionType) != 1 || !digitsOnly.MatchString(p.EmissionType) {
		return "", fmt.Errorf("nfce: tpEmis deve ter 1 dígito")
	}
	if len(p.Code) != 8 || !digitsOnly.MatchString(p.Code) {
		return "", fmt.Errorf("nfce: cNF deve ter 8 dígitos")
	}

	base := fmt.Sprintf("%s%02d%02d%s%s%03d%09d%s%s",
		p.UFCode,
		p.IssuedAt.Year()%100, int(p.IssuedAt.Month()),
		p.CNPJ,
		ModelNFCe,
		p.Series,
		p.Number,
		p.EmissionType,
		p.Code,
	)
	dv, err := CheckDigit(base)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%d", base, dv), nil
}

// CheckDigit calcula o dígito verificador módulo 11 dos 43 dígitos da chave.
// Pesos 2 a 9, aplicados da direita para a esquerda em ciclo. Resto 0 ou 1
// resulta em DV 0.
func CheckDigit(base string) (int, error) {
	if len(base) != 43 || !digitsOnly.MatchString(base) {
		return 0, fmt.Errorf("nfce: base da chave deve ter 43 dígitos")
	}
	sum := 0
	weight := 2
	for i := len(base) - 1; i >= 0; i-- {
		sum += int(base[i]-'0') * weight
		weight++
		if weight > 9 {
			weight = 2
		}
	}
	rest := sum % 11
	if rest < 2 {
		return 0, nil
	}
	return 11 - rest, nil
}

// Validate verifica formato (44 dígitos), modelo 65 e dígito verificador.
func Validate(key string) error {
	if len(key) != 44 || !digitsOnly.MatchString(key) {
		return fmt.Errorf("nfce: chave deve ter 44 dígitos")
	}
	if key[20:22] != ModelNFCe {
		return fmt.Errorf("nfce: modelo %s não é NFC-e (65)", key[20:22])
	}
	dv, err := CheckDigit(key[:43])
	if err != nil {
		return err
	}
	if int(key[43]-'0') != dv {
		return fmt.Errorf("nfce: dígito verificador inválido")
	}
	return nil
}
