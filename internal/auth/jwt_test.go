package auth

import "testing"

func TestGerarEValidarToken(t *testing.T) {
	if err := CarregarSegredo("segredo-de-teste"); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	token, err := GerarToken(42, true)
	if err != nil {
		t.Fatalf("erro ao gerar token: %v", err)
	}

	claims, err := ParseAndValidate(token)
	if err != nil {
		t.Fatalf("erro ao validar token: %v", err)
	}
	if claims.UserID != 42 || !claims.IsAdmin {
		t.Errorf("claims incorretas: %+v", claims)
	}
}

func TestCarregarSegredoVazio(t *testing.T) {
	if err := CarregarSegredo(""); err == nil {
		t.Errorf("segredo vazio deveria falhar")
	}
}

func TestTokenAdulterado(t *testing.T) {
	if err := CarregarSegredo("segredo-de-teste"); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	token, err := GerarToken(7, false)
	if err != nil {
		t.Fatalf("erro ao gerar token: %v", err)
	}

	if _, err := ParseAndValidate(token + "x"); err == nil {
		t.Errorf("token adulterado deveria ser rejeitado")
	}
}
