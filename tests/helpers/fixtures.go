// Package helpers carries shared fixtures for the test suites: raw
// response documents the way providers actually deliver them, including
// the string-encoded lookup indexes some endpoints emit.
package helpers

import (
	"testing"

	"github.com/theoremus-urban-solutions/hafas-to-transit/config"
	"github.com/theoremus-urban-solutions/hafas-to-transit/normalizer"
	"github.com/theoremus-urban-solutions/hafas-to-transit/profile"
)

// RawCommonJSON is a shared lookup block: three stations, two products,
// one operator, one remark.
const RawCommonJSON = `{
	"locL": [
		{
			"type": "S",
			"id": "A=1@O=U Spichernstr.@X=13329811@Y=52496171@L=900000042101@",
			"extId": "900000042101",
			"name": "U Spichernstr.",
			"crd": {"x": 13329811, "y": 52496171}
		},
		{
			"type": "S",
			"id": "A=1@O=U Pankow@X=13412345@Y=52567890@L=900000130002@",
			"extId": "900000130002",
			"name": "U Pankow",
			"crd": {"x": 13412345, "y": 52567890}
		},
		{
			"type": "S",
			"id": "A=1@O=S+U Alexanderplatz@X=13411267@Y=52521508@L=900000100003@",
			"extId": "900000100003",
			"name": "S+U Alexanderplatz",
			"crd": {"x": 13411267, "y": 52521508}
		}
	],
	"prodL": [
		{"line": "U2", "cls": 2, "prodCtx": {"catCode": "2", "catOutS": "U"}},
		{"line": "M41", "cls": 8, "prodCtx": {"catCode": "5", "catOutS": "Bus"}}
	],
	"opL": [{"name": "Berliner Verkehrsbetriebe"}],
	"remL": [{"type": "A", "code": "FB", "txtN": "Bicycle conveyance"}]
}`

// RawJourneysJSON is a routing response with one two-leg connection.
// Lookup indexes are mixed numbers and numeric strings on purpose.
const RawJourneysJSON = `{
	"common": ` + RawCommonJSON + `,
	"conL": [
		{
			"date": "20200610",
			"secL": [
				{
					"type": "JNY",
					"dep": {"locX": "0", "dTimeS": "110000", "dTimeR": "110130", "dPlatfS": "U2"},
					"arr": {"locX": 2, "aTimeS": "111000"},
					"jny": {
						"jid": "1|1234|2|86|10062020",
						"prodX": "0",
						"dirTxt": "Pankow",
						"stopL": [
							{"locX": 0, "dTimeS": "110000"},
							{"locX": 2, "aTimeS": "111000"}
						]
					}
				},
				{
					"type": "WALK",
					"dep": {"locX": 2, "dTimeS": "111200"},
					"arr": {"locX": 1, "aTimeS": "111800"}
				}
			]
		}
	]
}`

// RawBoardJSON is a departure-board response with two rows, one of them
// without realtime data.
const RawBoardJSON = `{
	"common": ` + RawCommonJSON + `,
	"jnyL": [
		{
			"jid": "1|12345|0|80|10062020",
			"date": "20200610",
			"stbStop": {"locX": 0, "dTimeS": "110000", "dTimeR": "110130"},
			"dirTxt": "Pankow",
			"prodX": 0,
			"remL": [{"remX": 0}]
		},
		{
			"jid": "1|67890|0|80|10062020",
			"date": "20200610",
			"stbStop": {"locX": "2", "dTimeS": "111500"},
			"dirTxt": "Sonnenallee",
			"prodX": "1"
		}
	]
}`

// RawRadarJSON is a live-vehicle response with one moving vehicle and
// three animation keyframes.
const RawRadarJSON = `{
	"common": ` + RawCommonJSON + `,
	"jnyL": [
		{
			"dirTxt": "Pankow",
			"prodX": 0,
			"date": "20200610",
			"pos": {"x": 13372046, "y": 52521957},
			"stopL": [
				{"locX": 0, "aTimeS": "110000", "dTimeS": "110100"},
				{"locX": 2, "aTimeS": "111000"}
			],
			"ani": {
				"mSec": [0, 4000, 8000],
				"fLocX": [0, 0, 2],
				"tLocX": [0, 2, 2]
			}
		}
	]
}`

// RawLocationsJSON is a location-search response mixing a station, an
// address, and a POI.
const RawLocationsJSON = `{
	"common": {"locL": [], "prodL": [], "opL": [], "remL": []},
	"locL": [
		{
			"type": "S",
			"id": "A=1@O=U Spichernstr.@X=13329811@Y=52496171@L=900000042101@",
			"extId": "0900000042101",
			"name": "U Spichernstr.",
			"crd": {"x": 13329811, "y": 52496171}
		},
		{
			"type": "A",
			"name": "Torfstraße 17, Berlin",
			"crd": {"x": 13350840, "y": 52541797}
		},
		{
			"type": "P",
			"extId": "900980720",
			"name": "Berlin, Zoologischer Garten",
			"crd": {"x": 13338129, "y": 52506126}
		}
	]
}`

// RawWarningsJSON is a service-warning response with one resolvable and
// one dangling edge reference.
const RawWarningsJSON = `{
	"common": {
		"locL": [], "prodL": [], "opL": [], "remL": [],
		"himMsgEdgeL": [
			{
				"icon": {"type": "HimWarn", "res": "HIM1"},
				"fromLocation": {"type": "S", "extId": "900000042101", "name": "U Spichernstr."},
				"toLocation": {"type": "S", "extId": "900000100003", "name": "S+U Alexanderplatz"}
			}
		],
		"himMsgEventL": [
			{
				"fromLocation": {"type": "S", "extId": "900000042101", "name": "U Spichernstr."},
				"toLocation": {"type": "S", "extId": "900000100003", "name": "S+U Alexanderplatz"},
				"fDate": "20200610",
				"fTime": "093000",
				"tDate": "20200610",
				"tTime": "120000"
			}
		]
	},
	"msgL": [
		{
			"hid": "23609",
			"icon": {"type": "HimWarn", "res": "HIM1"},
			"head": "Station closed<br>Use the replacement service",
			"text": "Due to construction<br/>no trains stop here.",
			"prio": 50,
			"cat": 0,
			"prod": 2,
			"edgeRefL": [0, 7],
			"eventRefL": [0],
			"sDate": "20200610",
			"sTime": "093000",
			"eDate": "20200610",
			"eTime": "120000",
			"lModDate": "20200609",
			"lModTime": "233000"
		}
	]
}`

// TestConfig is an application configuration suitable for the suites:
// Berlin timezone, default product table, line detail enabled.
func TestConfig() config.AppConfig {
	return config.AppConfig{
		Server:     config.ServerConfig{Port: 16182},
		Profile:    config.ProfileConfig{Timezone: "Europe/Berlin"},
		Normalizer: config.NormalizerConfig{LinesOfStops: true},
	}
}

// NewTestNormalizer builds a normalizer over the Berlin default profile.
func NewTestNormalizer(t *testing.T) *normalizer.Normalizer {
	t.Helper()
	prof, err := profile.NewDefault("Europe/Berlin", nil)
	if err != nil {
		t.Fatalf("Failed to build profile: %v", err)
	}
	return normalizer.New(prof, normalizer.Options{})
}
