package normalizer

import (
	"testing"

	"github.com/theoremus-urban-solutions/hafas-to-transit/hafas"
	"github.com/theoremus-urban-solutions/hafas-to-transit/profile"
)

func newTestNormalizer(t *testing.T, opts Options) *Normalizer {
	t.Helper()
	prof, err := profile.NewDefault("Europe/Berlin", nil)
	if err != nil {
		t.Fatalf("Failed to build profile: %v", err)
	}
	return New(prof, opts)
}

// testCommon is a small shared lookup block: three stations, two
// products, one operator, one remark.
func testCommon() *hafas.Common {
	cls2 := 2
	cls8 := 8
	return &hafas.Common{
		LocL: []hafas.RawLocation{
			{
				Type:  "S",
				ID:    "A=1@O=U Spichernstr.@X=13329811@Y=52496171@L=900000042101@",
				ExtID: "900000042101",
				Name:  "U Spichernstr.",
				Crd:   &hafas.RawCoord{X: 13329811, Y: 52496171},
			},
			{
				Type:  "S",
				ID:    "A=1@O=U Pankow@X=13412345@Y=52567890@L=900000130002@",
				ExtID: "900000130002",
				Name:  "U Pankow",
				Crd:   &hafas.RawCoord{X: 13412345, Y: 52567890},
			},
			{
				Type:  "S",
				ID:    "A=1@O=S+U Alexanderplatz@X=13411267@Y=52521508@L=900000100003@",
				ExtID: "900000100003",
				Name:  "S+U Alexanderplatz",
				Crd:   &hafas.RawCoord{X: 13411267, Y: 52521508},
			},
		},
		ProdL: []hafas.RawProduct{
			{
				Line: "U2",
				Cls:  &cls2,
				ProdCtx: &hafas.RawProductContext{
					CatCode: "2",
					CatOutS: "U",
				},
			},
			{
				Line: "M41",
				Cls:  &cls8,
				ProdCtx: &hafas.RawProductContext{
					CatCode: "5",
					CatOutS: "Bus",
				},
			},
		},
		OpL: []hafas.RawOperator{
			{Name: "Berliner Verkehrsbetriebe"},
		},
		RemL: []hafas.RawRemark{
			{Type: "A", Code: "FB", TxtN: "Bicycle conveyance"},
		},
	}
}
