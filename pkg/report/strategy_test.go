package report

import (
	"errors"
	"testing"
)

func TestDefaultRevenue(t *testing.T) {
	rev, err := DefaultRevenue().Revenue(ItemSale{SKU: "p1", SalePrice: 12.5, Quantity: 3})
	if err != nil {
		t.Fatalf("Revenue() error = %v", err)
	}
	if rev != 37.5 {
		t.Errorf("Revenue() = %v, want 37.5", rev)
	}
}

func TestBandedBonus_Rates(t *testing.T) {
	seller := SellerWithProfit{
		Seller: Seller{ID: "s1", FirstName: "Ava", LastName: "Adler"},
		Profit: 100,
	}

	tests := []struct {
		name  string
		rank  int
		total int
		want  float64
	}{
		{"first of five", 0, 5, 15},
		{"second of five", 1, 5, 10},
		{"third of five", 2, 5, 10},
		{"second-to-last of five", 3, 5, 5},
		{"last of five", 4, 5, 0},
		{"middle of six", 3, 6, 0},
		{"second-to-last of six", 4, 6, 5},
		{"last of six", 5, 6, 0},

		// Overlapping bands for small totals: the first matching rule
		// in declaration order wins.
		{"only seller", 0, 1, 15},
		{"first of two is also second-to-last", 0, 2, 15},
		{"last of two is also rank one", 1, 2, 10},
		{"middle of three is also second-to-last", 1, 3, 10},
		{"last of three is also rank two", 2, 3, 10},
		{"rank two of four is also second-to-last", 2, 4, 10},
		{"last of four", 3, 4, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BandedBonus{}.Bonus(tt.rank, tt.total, seller)
			if err != nil {
				t.Fatalf("Bonus(%d, %d) error = %v", tt.rank, tt.total, err)
			}
			if got != tt.want {
				t.Errorf("Bonus(%d, %d) = %v, want %v", tt.rank, tt.total, got, tt.want)
			}
		})
	}
}

func TestBandedBonus_SeniorMultiplier(t *testing.T) {
	senior := SellerWithProfit{
		Seller: Seller{ID: "s1", FirstName: "Ben", LastName: "Brandt", Position: SeniorPosition},
		Profit: 90,
	}

	got, err := BandedBonus{}.Bonus(1, 5, senior)
	if err != nil {
		t.Fatalf("Bonus() error = %v", err)
	}
	// 10% of 90, times 1.5
	if got != 13.5 {
		t.Errorf("Bonus() = %v, want 13.5", got)
	}
}

func TestBandedBonus_CustomSeniorTitle(t *testing.T) {
	seller := SellerWithProfit{
		Seller: Seller{ID: "s1", FirstName: "Ava", LastName: "Adler", Position: "Principal Seller"},
		Profit: 100,
	}

	got, err := BandedBonus{SeniorPosition: "Principal Seller"}.Bonus(0, 5, seller)
	if err != nil {
		t.Fatalf("Bonus() error = %v", err)
	}
	if got != 22.5 {
		t.Errorf("Bonus() = %v, want 22.5", got)
	}

	// With the override set, the default title no longer qualifies.
	seller.Position = SeniorPosition
	got, err = BandedBonus{SeniorPosition: "Principal Seller"}.Bonus(0, 5, seller)
	if err != nil {
		t.Fatalf("Bonus() error = %v", err)
	}
	if got != 15 {
		t.Errorf("Bonus() = %v, want 15", got)
	}
}

func TestBandedBonus_Rounding(t *testing.T) {
	seller := SellerWithProfit{
		Seller: Seller{ID: "s1", FirstName: "Ava", LastName: "Adler"},
		Profit: 33.333,
	}

	got, err := BandedBonus{}.Bonus(0, 5, seller)
	if err != nil {
		t.Fatalf("Bonus() error = %v", err)
	}
	// 15% of 33.333 is 4.99995, rounded to 5.00
	if got != 5 {
		t.Errorf("Bonus() = %v, want 5", got)
	}
}

func TestBandedBonus_IndexOutOfRange(t *testing.T) {
	seller := SellerWithProfit{Seller: Seller{ID: "s1"}, Profit: 100}

	for _, tt := range []struct {
		rank, total int
	}{
		{-1, 5},
		{5, 5},
		{0, 0},
	} {
		_, err := BandedBonus{}.Bonus(tt.rank, tt.total, seller)
		if !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Bonus(%d, %d) = %v, want ErrIndexOutOfRange", tt.rank, tt.total, err)
		}
	}
}

func TestFlatBonus(t *testing.T) {
	seller := SellerWithProfit{Seller: Seller{ID: "s1"}, Profit: 200}

	got, err := FlatBonus(0.05).Bonus(3, 5, seller)
	if err != nil {
		t.Fatalf("Bonus() error = %v", err)
	}
	if got != 10 {
		t.Errorf("Bonus() = %v, want 10", got)
	}

	if _, err := FlatBonus(0.05).Bonus(5, 5, seller); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Bonus(5, 5) = %v, want ErrIndexOutOfRange", err)
	}
}
