package nfce_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caixalivre/pdv-api/internal/domain/nfce"
)

// ──────────────────────────────────────────────────────────────────────────────
// TestBuild valida que a montagem da chave de acesso produz exatamente a
// sequência de 44 dígitos esperada para parâmetros conhecidos.
//
// Este test é o canário da integração fiscal: se alguém alterar sem querer a
// ordem de concatenação, a largura de um campo ou o cálculo do módulo 11, o
// test quebra antes de qualquer chave inválida chegar a um cupom.
//
// Vetor de referência (DV calculado manualmente pelo módulo 11):
//
//	Chave = cUF + AAMM + CNPJ + mod + série + nNF + tpEmis + cNF + cDV
//	      = "35" + "2406" + "11222333000181" + "65" + "001" +
//	        "000000042" + "1" + "12345678" + "1"
// ──────────────────────────────────────────────────────────────────────────────

const (
	testKeyExpected = "35240611222333000181650010000000421123456781"

	testUFCode = "35"
	testCNPJ   = "11222333000181"
	testCode   = "12345678"
)

func testParams() *nfce.KeyParams {
	return &nfce.KeyParams{
		UFCode:       testUFCode,
		IssuedAt:     time.Date(2024, time.June, 15, 10, 30, 0, 0, time.UTC),
		CNPJ:         testCNPJ,
		Series:       1,
		Number:       42,
		EmissionType: "1",
		Code:         testCode,
	}
}

func TestBuild_VetorExato(t *testing.T) {
	b := nfce.NewKeyBuilder()

	key, err := b.Build(testParams())
	require.NoError(t, err, "Build não deve falhar com parâmetros válidos")
	assert.Equal(t, testKeyExpected, key,
		"a chave deve coincidir exatamente com o vetor de referência")
	assert.Len(t, key, 44)
}

// Chamar Build duas vezes com os mesmos parâmetros produz a mesma chave.
func TestBuild_Determinista(t *testing.T) {
	b := nfce.NewKeyBuilder()

	k1, err1 := b.Build(testParams())
	k2, err2 := b.Build(testParams())

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, k1, k2, "o mesmo input sempre produz a mesma chave")
}

// Mudar só o número da nota muda a chave inteira (sensibilidade ao input).
func TestBuild_NumeroDiferente(t *testing.T) {
	b := nfce.NewKeyBuilder()

	p2 := testParams()
	p2.Number = 43

	k1, _ := b.Build(testParams())
	k2, err := b.Build(p2)
	require.NoError(t, err)
	assert.NotEqual(t, k1, k2)
	assert.Equal(t, "35240611222333000181650010000000431123456789", k2,
		"vetor de referência para nNF=43")
}

// Vetor independente com série, UF e tpEmis distintos.
func TestBuild_SegundoVetor(t *testing.T) {
	b := nfce.NewKeyBuilder()

	key, err := b.Build(&nfce.KeyParams{
		UFCode:       "41",
		IssuedAt:     time.Date(2023, time.November, 2, 0, 0, 0, 0, time.UTC),
		CNPJ:         "04252011000110",
		Series:       2,
		Number:       987654,
		EmissionType: "9",
		Code:         "00001234",
	})
	require.NoError(t, err)
	assert.Equal(t, "41231104252011000110650020009876549000012343", key)
}

func TestCheckDigit_RestoMenorQueDois(t *testing.T) {
	// Base de 43 zeros: soma 0, resto 0 → DV 0.
	base := "0000000000000000000000000000000000000000000"
	dv, err := nfce.CheckDigit(base)
	require.NoError(t, err)
	assert.Equal(t, 0, dv)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, nfce.Validate(testKeyExpected))

	// DV trocado.
	bad := testKeyExpected[:43] + "7"
	assert.Error(t, nfce.Validate(bad), "DV incorreto deve ser rejeitado")

	// Modelo 55 (NF-e) não é aceito aqui.
	model55 := testKeyExpected[:20] + "55" + testKeyExpected[22:]
	assert.Error(t, nfce.Validate(model55))

	assert.Error(t, nfce.Validate("123"), "tamanho diferente de 44 é inválido")
	assert.Error(t, nfce.Validate(testKeyExpected[:43]+"x"))
}

func TestBuild_ParametrosInvalidos(t *testing.T) {
	b := nfce.NewKeyBuilder()

	casos := map[string]*nfce.KeyParams{
		"nil":           nil,
		"uf curta":      func() *nfce.KeyParams { p := testParams(); p.UFCode = "3"; return p }(),
		"cnpj inválido": func() *nfce.KeyParams { p := testParams(); p.CNPJ = "123"; return p }(),
		"sem data":      func() *nfce.KeyParams { p := testParams(); p.IssuedAt = time.Time{}; return p }(),
		"número zero":   func() *nfce.KeyParams { p := testParams(); p.Number = 0; return p }(),
		"cnf curto":     func() *nfce.KeyParams { p := testParams(); p.Code = "123"; return p }(),
	}
	for nome, p := range casos {
		_, err := b.Build(p)
		assert.Error(t, err, nome)
	}
}
