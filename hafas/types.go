package hafas

// Location type tags. S/ST mark stations, A/ADR addresses, P points of
// interest; anything else is treated as unknown.
const (
	LocationStation      = "S"
	LocationStationShort = "ST"
	LocationAddress      = "A"
	LocationAddressLong  = "ADR"
	LocationPOI          = "P"
)

// Section type tags on a connection.
const (
	SectionJourney = "JNY"
	SectionWalk    = "WALK"
)

// RawCoord is a full-precision fixed-point coordinate pair (1e6 scale).
// A missing pair decodes zero-valued.
type RawCoord struct {
	X int64 `json:"x"`
	Y int64 `json:"y"`
	Z int64 `json:"z,omitempty"`
}

// RawProductContext carries the product category fields nested inside a
// product record.
type RawProductContext struct {
	CatCode string `json:"catCode"`
	CatOutS string `json:"catOutS"`
}

// RawProduct is a raw line/product record. The REST endpoints flatten the
// category fields to the top level, the mgate endpoint nests them in
// prodCtx; EffectiveContext merges the two.
type RawProduct struct {
	Line    string             `json:"line"`
	Name    string             `json:"name"`
	Number  string             `json:"number"`
	Cls     *int               `json:"cls"`
	CatCode string             `json:"catCode"`
	CatOutS string             `json:"catOutS"`
	IcoX    *Index             `json:"icoX"`
	OprX    *Index             `json:"oprX"`
	ProdCtx *RawProductContext `json:"prodCtx"`
}

// EffectiveContext merges top-level category fields with the nested
// product context. Nested values win when both carry the same key.
// Returns nil when neither form is present.
func (p *RawProduct) EffectiveContext() *RawProductContext {
	if p.ProdCtx == nil && p.CatCode == "" && p.CatOutS == "" {
		return nil
	}
	ctx := &RawProductContext{CatCode: p.CatCode, CatOutS: p.CatOutS}
	if p.ProdCtx != nil {
		if p.ProdCtx.CatCode != "" {
			ctx.CatCode = p.ProdCtx.CatCode
		}
		if p.ProdCtx.CatOutS != "" {
			ctx.CatOutS = p.ProdCtx.CatOutS
		}
	}
	return ctx
}

// RawOperator is an operator table entry.
type RawOperator struct {
	Name string `json:"name"`
}

// RawLocation is a raw station, address, or POI record. The id field is a
// composite identifier (see ParseLID); extId is the stable external id
// when the endpoint delivers one.
type RawLocation struct {
	Type          string       `json:"type"`
	ID            string       `json:"id"`
	ExtID         string       `json:"extId"`
	Name          string       `json:"name"`
	Lat           *float64     `json:"lat"`
	Lon           *float64     `json:"long"`
	Crd           *RawCoord    `json:"crd"`
	PCls          *int         `json:"pCls"`
	ProductAtStop []RawProduct `json:"productAtStop"`
	HasMainMast   bool         `json:"hasMainMast"`
	MainMastID    string       `json:"mainMastId"`
	MainMastExtID string       `json:"mainMastExtId"`
	Dist          *int         `json:"dist"`
}

// RawRemark is a remark table entry. Field semantics upstream are still
// largely undocumented.
type RawRemark struct {
	Type string `json:"type"`
	Code string `json:"code"`
	TxtN string `json:"txtN"`
}

// RawRemarkRef points into the remark table.
type RawRemarkRef struct {
	RemX Index `json:"remX"`
}

// RawStopover is one entry of a passed-stop or next-stop list. Times are
// compact HAFAS time-of-day values; the R suffix marks realtime, S
// scheduled.
type RawStopover struct {
	LocX   Index  `json:"locX"`
	ATimeS string `json:"aTimeS"`
	ATimeR string `json:"aTimeR"`
	DTimeS string `json:"dTimeS"`
	DTimeR string `json:"dTimeR"`
}

// RawSectionStop is the departure or arrival end of a connection section.
type RawSectionStop struct {
	LocX    Index  `json:"locX"`
	DTimeS  string `json:"dTimeS"`
	DTimeR  string `json:"dTimeR"`
	DPlatfS string `json:"dPlatfS"`
	ATimeS  string `json:"aTimeS"`
	ATimeR  string `json:"aTimeR"`
	APlatfS string `json:"aPlatfS"`
}

// RawFrequencyJny is one schedule alternative inside a frequency block.
type RawFrequencyJny struct {
	ProdX Index         `json:"prodX"`
	StopL []RawStopover `json:"stopL"`
}

// RawFrequency is the schedule-frequency block of a ride.
type RawFrequency struct {
	JnyL []RawFrequencyJny `json:"jnyL"`
}

// RawJny is the ride payload of a JNY section.
type RawJny struct {
	JID    string         `json:"jid"`
	ProdX  Index          `json:"prodX"`
	DirTxt string         `json:"dirTxt"`
	StopL  []RawStopover  `json:"stopL"`
	RemL   []RawRemarkRef `json:"remL"`
	Freq   *RawFrequency  `json:"freq"`
}

// RawSection is one leg-shaped segment of a raw connection.
type RawSection struct {
	Type string         `json:"type"`
	Dep  RawSectionStop `json:"dep"`
	Arr  RawSectionStop `json:"arr"`
	Jny  *RawJny        `json:"jny"`
}

// RawConnection is one routing result: an ordered section list plus the
// calendar day all its compact times resolve against.
type RawConnection struct {
	Date string       `json:"date"`
	SecL []RawSection `json:"secL"`
}

// RawBoardStop is the board-position part of a departure entry.
type RawBoardStop struct {
	LocX    Index  `json:"locX"`
	DTimeS  string `json:"dTimeS"`
	DTimeR  string `json:"dTimeR"`
	DPlatfS string `json:"dPlatfS"`
}

// RawBoardEntry is one row of a live departure board. The jid is a
// pipe-delimited composite reference; its second field is the numeric
// trip identifier.
type RawBoardEntry struct {
	JID     string         `json:"jid"`
	Date    string         `json:"date"`
	StbStop RawBoardStop   `json:"stbStop"`
	DirTxt  string         `json:"dirTxt"`
	ProdX   Index          `json:"prodX"`
	RemL    []RawRemarkRef `json:"remL"`
}

// RawAnimation carries parallel arrays of interpolation keyframes:
// elapsed milliseconds, origin location indices, destination location
// indices, paired positionally.
type RawAnimation struct {
	MSec  []int `json:"mSec"`
	FLocX []int `json:"fLocX"`
	TLocX []int `json:"tLocX"`
}

// RawMovement is a live vehicle record. ProdX stays a plain int here:
// the radar endpoint has only ever been observed emitting numbers, and
// the missing string coercion matches upstream behavior.
type RawMovement struct {
	DirTxt string        `json:"dirTxt"`
	ProdX  int           `json:"prodX"`
	Date   string        `json:"date"`
	Pos    *RawCoord     `json:"pos"`
	StopL  []RawStopover `json:"stopL"`
	Ani    *RawAnimation `json:"ani"`
}

// RawIcon is a warning icon descriptor.
type RawIcon struct {
	Type string `json:"type"`
	Res  string `json:"res"`
}

// RawEdge is a shared-table entry describing a geographic segment
// affected by a warning.
type RawEdge struct {
	IcoX         *Index       `json:"icoX"`
	FLocX        *Index       `json:"fLocX"`
	TLocX        *Index       `json:"tLocX"`
	FromLocation *RawLocation `json:"fromLocation"`
	ToLocation   *RawLocation `json:"toLocation"`
	Icon         *RawIcon     `json:"icon"`
	Dir          *int         `json:"dir"`
}

// RawEvent is a shared-table entry describing a time-bounded impact
// window of a warning.
type RawEvent struct {
	FromLocation *RawLocation `json:"fromLocation"`
	ToLocation   *RawLocation `json:"toLocation"`
	FDate        string       `json:"fDate"`
	FTime        string       `json:"fTime"`
	TDate        string       `json:"tDate"`
	TTime        string       `json:"tTime"`
	SectionNums  []string     `json:"sectionNums"`
}

// RawWarning is a raw service-warning record.
type RawWarning struct {
	HID       string   `json:"hid"`
	Icon      *RawIcon `json:"icon"`
	Head      string   `json:"head"`
	Text      string   `json:"text"`
	Prio      int      `json:"prio"`
	Cat       *int     `json:"cat"`
	Prod      *int     `json:"prod"`
	EdgeRefL  []Index  `json:"edgeRefL"`
	EventRefL []Index  `json:"eventRefL"`
	SDate     string   `json:"sDate"`
	STime     string   `json:"sTime"`
	EDate     string   `json:"eDate"`
	ETime     string   `json:"eTime"`
	LModDate  string   `json:"lModDate"`
	LModTime  string   `json:"lModTime"`
}

// Common is the shared lookup block delivered alongside every payload.
// Entities reference its tables by integer index.
type Common struct {
	LocL         []RawLocation `json:"locL"`
	ProdL        []RawProduct  `json:"prodL"`
	OpL          []RawOperator `json:"opL"`
	RemL         []RawRemark   `json:"remL"`
	HimMsgEdgeL  []RawEdge     `json:"himMsgEdgeL"`
	HimMsgEventL []RawEvent    `json:"himMsgEventL"`
}
