package dto

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- SanitizeStruct tests ---

func TestSanitizeStruct_TrimsWhitespace(t *testing.T) {
	req := SendTransactionRequest{
		WalletID:         1,
		RecipientAddress: "  SOLabc123  ",
		Amount:           " 1.5 ",
		Token:            " SOL ",
	}
	SanitizeStruct(&req)

	assert.Equal(t, "SOLabc123", req.RecipientAddress)
	assert.Equal(t, "1.5", req.Amount)
	assert.Equal(t, "SOL", req.Token)
}

func TestSanitizeStruct_EscapesHTML(t *testing.T) {
	req := AIQueryRequest{
		Message: "what is <script>alert('x')</script> solana",
	}
	SanitizeStruct(&req)

	assert.Contains(t, req.Message, "&lt;script&gt;")
	assert.NotContains(t, req.Message, "<script>")
}

func TestSanitizeStruct_NonPointerIsNoOp(t *testing.T) {
	s := "hello"
	SanitizeStruct(s) // should not panic
}

// --- Custom Validator tests ---

func TestPositiveAmount_Valid(t *testing.T) {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)

	cases := []string{"1", "0.000001", "1.5", "  2.25  ", "1000000"}
	for _, tc := range cases {
		err := v.Var(tc, "positive_amount")
		assert.NoError(t, err, "expected valid: %s", tc)
	}
}

func TestPositiveAmount_Invalid(t *testing.T) {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)

	cases := []string{"0", "-1", "-0.5", "abc", "", "1.2.3", "1e"}
	for _, tc := range cases {
		err := v.Var(tc, "positive_amount")
		assert.Error(t, err, "expected invalid: %s", tc)
	}
}

func TestLoginRequest_Binding(t *testing.T) {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)

	t.Run("private key required without demo flag", func(t *testing.T) {
		err := v.Struct(LoginRequest{PrivateKey: "", IsDemo: false})
		assert.Error(t, err)
	})

	t.Run("demo login needs no private key", func(t *testing.T) {
		err := v.Struct(LoginRequest{PrivateKey: "", IsDemo: true})
		assert.NoError(t, err)
	})

	t.Run("private key login", func(t *testing.T) {
		err := v.Struct(LoginRequest{PrivateKey: "deadbeef", IsDemo: false})
		assert.NoError(t, err)
	})
}

func TestSendTransactionRequest_Binding(t *testing.T) {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)

	valid := SendTransactionRequest{
		WalletID:         1,
		RecipientAddress: "SOLabc",
		Amount:           "1.5",
		Token:            "USDC",
	}
	assert.NoError(t, v.Struct(valid))

	t.Run("rejects unsupported token", func(t *testing.T) {
		req := valid
		req.Token = "DOGE"
		assert.Error(t, v.Struct(req))
	})

	t.Run("rejects zero amount", func(t *testing.T) {
		req := valid
		req.Amount = "0"
		assert.Error(t, v.Struct(req))
	})

	t.Run("rejects missing wallet id", func(t *testing.T) {
		req := valid
		req.WalletID = 0
		assert.Error(t, v.Struct(req))
	})
}
