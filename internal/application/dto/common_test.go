package dto_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseeliezerr7/AppPandelpueblo/internal/application/dto"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fechas
// ──────────────────────────────────────────────────────────────────────────────

// Los tres formatos aceptados parsean; los demás no.
func TestParseFecha(t *testing.T) {
	casos := []struct {
		entrada string
		ok      bool
	}{
		{"2024-06-15 09:30:00", true},
		{"2024-06-15", true},
		{"2024-06-15T09:30:00Z", true},
		{"15/06/2024", false},
		{"ayer", false},
		{"", false},
	}
	for _, c := range casos {
		_, err := dto.ParseFecha(c.entrada)
		if c.ok {
			assert.NoError(t, err, "debería parsear %q", c.entrada)
		} else {
			assert.Error(t, err, "no debería parsear %q", c.entrada)
		}
	}
}

// La serialización siempre usa el formato con hora.
func TestFormatFecha(t *testing.T) {
	f := time.Date(2024, 6, 15, 9, 30, 0, 0, time.UTC)
	assert.Equal(t, "2024-06-15 09:30:00", dto.FormatFecha(f))

	soloFecha, err := dto.ParseFecha("2024-06-15")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-15 00:00:00", dto.FormatFecha(soloFecha))
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación del pedido
// ──────────────────────────────────────────────────────────────────────────────

func pedidoValido() dto.PedidoRequest {
	return dto.PedidoRequest{
		ClienteID: 1,
		Fecha:     "2024-06-15 00:00:00",
		Detalles: []dto.DetallePedidoRequest{
			{ProductoID: 1, Cantidad: 2, Precio: decimal.NewFromFloat(10)},
		},
	}
}

func TestPedidoValidate_Valido(t *testing.T) {
	req := pedidoValido()
	assert.True(t, req.Validate().Empty())
}

// Cantidad cero en una línea se rechaza antes de abrir la transacción, con el
// mensaje indexado por posición.
func TestPedidoValidate_CantidadCero(t *testing.T) {
	req := pedidoValido()
	req.Detalles[0].Cantidad = 0

	msgs := req.Validate()
	require.False(t, msgs.Empty())
	assert.Contains(t, msgs, "detalles.0.cantidad")
}

func TestPedidoValidate_SinDetalles(t *testing.T) {
	req := pedidoValido()
	req.Detalles = nil

	msgs := req.Validate()
	assert.Contains(t, msgs, "detalles")
}

func TestPedidoValidate_PrecioNegativo(t *testing.T) {
	req := pedidoValido()
	req.Detalles = append(req.Detalles, dto.DetallePedidoRequest{
		ProductoID: 2, Cantidad: 1, Precio: decimal.NewFromFloat(-1),
	})

	msgs := req.Validate()
	assert.Contains(t, msgs, "detalles.1.precio")
}

func TestPedidoValidate_FechaInvalida(t *testing.T) {
	req := pedidoValido()
	req.Fecha = "15/06/2024"

	msgs := req.Validate()
	assert.Contains(t, msgs, "fecha")
}
