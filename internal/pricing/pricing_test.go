package pricing

import (
	"testing"

	"transfer-booking/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOptions(sedanPrice, vclassPrice string) []*entity.VehicleOption {
	return []*entity.VehicleOption{
		{VehicleClass: entity.VehicleClassSedan, FixedPrice: sedanPrice, Position: 0},
		{VehicleClass: entity.VehicleClassVClass, FixedPrice: vclassPrice, Position: 1},
	}
}

func TestQuote(t *testing.T) {
	options := testOptions("65", "130")

	tests := []struct {
		name  string
		class entity.VehicleClass
		trip  entity.TripType
		want  float64
	}{
		{"sedan one-way", entity.VehicleClassSedan, entity.TripTypeOneWay, 65},
		{"sedan return", entity.VehicleClassSedan, entity.TripTypeReturn, 130},
		{"vclass one-way", entity.VehicleClassVClass, entity.TripTypeOneWay, 130},
		{"vclass return", entity.VehicleClassVClass, entity.TripTypeReturn, 260},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Quote(options, tt.class, tt.trip)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuoteFormattedPrices(t *testing.T) {
	t.Run("currency symbol", func(t *testing.T) {
		got, err := Quote(testOptions("€65", "€130"), entity.VehicleClassSedan, entity.TripTypeOneWay)
		require.NoError(t, err)
		assert.Equal(t, 65.0, got)
	})

	t.Run("decimals", func(t *testing.T) {
		got, err := Quote(testOptions("65.50", "130"), entity.VehicleClassSedan, entity.TripTypeReturn)
		require.NoError(t, err)
		assert.Equal(t, 131.0, got)
	})

	t.Run("thousands spacing", func(t *testing.T) {
		got, err := Quote(testOptions("1 200", "2 400"), entity.VehicleClassVClass, entity.TripTypeOneWay)
		require.NoError(t, err)
		assert.Equal(t, 2400.0, got)
	})
}

func TestQuoteErrors(t *testing.T) {
	t.Run("unknown vehicle class", func(t *testing.T) {
		_, err := Quote(testOptions("65", "130"), entity.VehicleClass("limo"), entity.TripTypeOneWay)
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})

	t.Run("missing option", func(t *testing.T) {
		options := []*entity.VehicleOption{
			{VehicleClass: entity.VehicleClassSedan, FixedPrice: "65"},
		}
		_, err := Quote(options, entity.VehicleClassVClass, entity.TripTypeOneWay)
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})

	t.Run("empty option list", func(t *testing.T) {
		_, err := Quote(nil, entity.VehicleClassSedan, entity.TripTypeOneWay)
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})

	t.Run("unparsable price", func(t *testing.T) {
		_, err := Quote(testOptions("call us", "130"), entity.VehicleClassSedan, entity.TripTypeOneWay)
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})
}

func TestQuoteRoute(t *testing.T) {
	t.Run("nil route", func(t *testing.T) {
		_, err := QuoteRoute(nil, testOptions("65", "130"), entity.VehicleClassSedan, entity.TripTypeOneWay)
		assert.ErrorIs(t, err, ErrUnknownRoute)
	})

	t.Run("valid route", func(t *testing.T) {
		route := &entity.Route{Slug: "airport-city", FromLocation: "Airport", ToLocation: "City"}
		got, err := QuoteRoute(route, testOptions("65", "130"), entity.VehicleClassSedan, entity.TripTypeReturn)
		require.NoError(t, err)
		assert.Equal(t, 130.0, got)
	})
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		raw     string
		want    float64
		wantErr bool
	}{
		{"65", 65, false},
		{"65.00", 65, false},
		{"€65", 65, false},
		{"$ 99.50", 99.5, false},
		{"1 200", 1200, false},
		{"0", 0, false},
		{"", 0, true},
		{"TBD", 0, true},
		{"..", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParsePrice(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPrice)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
