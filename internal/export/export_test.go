package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Arshadjaved786/umrah-calculator/internal/config"
	"github.com/Arshadjaved786/umrah-calculator/internal/itinerary"
	"github.com/Arshadjaved786/umrah-calculator/internal/pkgstore"
	"github.com/Arshadjaved786/umrah-calculator/internal/pricing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func testPlan(t *testing.T) *pkgstore.Plan {
	t.Helper()
	opts := itinerary.Options{DepartureDate: "2024-12-28", TotalDays: 15}
	res, err := itinerary.Generate(opts)
	require.NoError(t, err)
	return &pkgstore.Plan{Options: opts, View: itinerary.ViewOptions{MarkWeekend: true}, Result: res}
}

func assertNonEmptyFile(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, info.Size() > 0)
}

func TestQRPNG(t *testing.T) {
	png, err := QRPNG("https://umrah-calculator.app/public/agency/al-noor", 0)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic))
}

func TestQRPNGEmpty(t *testing.T) {
	_, err := QRPNG("  ", 128)
	assert.EqualError(t, err, "qr content is empty")
}

func TestWriteQR(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qr", "agency.png")

	require.NoError(t, WriteQR("hello", path, 128))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, pngMagic))
}

func TestWriteItineraryPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "itinerary.pdf")
	agency := &config.Agency{Name: "Al Noor Travels", Contact: "+92 300 0000000", Address: "Lahore"}
	doc := ItineraryFromPlan(testPlan(t), agency, config.ProfileURL(config.DefaultPublicURL, "al-noor"))

	require.NotEmpty(t, doc.Notes)
	require.NoError(t, WriteItineraryPDF(doc, path))
	assertNonEmptyFile(t, path)
}

func TestWriteItineraryPDFWithoutAgency(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.pdf")

	require.NoError(t, WriteItineraryPDF(ItineraryFromPlan(testPlan(t), nil, ""), path))
	assertNonEmptyFile(t, path)
}

func TestWritePackagePDF(t *testing.T) {
	plan := testPlan(t)
	in := pricing.Input{
		Hotels:    pricing.HotelLinesFromView(plan.Projection()),
		Ticket:    pricing.Money{Amount: 180000, Currency: pricing.PKR},
		Airline:   "Saudia",
		VisaSAR:   pricing.DefaultVisaSAR,
		Transport: pricing.Transport{JeddahToMakkah: 150, MakkahToMadinah: 300, Vehicle: "GMC"},
		Profit:    pricing.Money{Amount: 50, Currency: pricing.USD},
		Pax:       2,
	}
	for i := range in.Hotels {
		in.Hotels[i].Name = "Test Hotel"
		in.Hotels[i].PricePerNight = 400
		in.Hotels[i].WeekendPrice = 550
	}
	q, err := pricing.Calculate(in)
	require.NoError(t, err)

	p := pkgstore.Package{
		ID:        "pkg_0f8fad5b-d9cb-469f-a165-70867728950e",
		UpdatedAt: time.Date(2025, 1, 5, 10, 0, 0, 0, time.UTC),
		Agency:    &config.Agency{Name: "Al Noor Travels", Slug: "al-noor"},
		Itinerary: plan,
		Input:     in,
		Quote:     q,
	}
	path := filepath.Join(t.TempDir(), "out", "package.pdf")

	require.NoError(t, WritePackagePDF(p, config.ProfileURL(config.DefaultPublicURL, "al-noor"), path))
	assertNonEmptyFile(t, path)
}

func TestWritePackagePDFWithoutItinerary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bare.pdf")
	q, err := pricing.Calculate(pricing.Input{VisaSAR: 300})
	require.NoError(t, err)

	require.NoError(t, WritePackagePDF(pkgstore.Package{ID: "pkg_x", Quote: q}, "https://ignored.example", path))
	assertNonEmptyFile(t, path)
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "0f8fad5b", shortID("pkg_0f8fad5b-d9cb-469f-a165-70867728950e"))
	assert.Equal(t, "x", shortID("pkg_x"))
}
