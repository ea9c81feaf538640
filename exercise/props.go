package exercise

// Props is the decoded payload of one component. The set of implementations is closed to this
// package; every switch over Props in the module must handle each of them.
type Props interface {
	Kind() Kind
	sealed()
}

type Option struct {
	Text string `json:"text"`
}

type ImageRef struct {
	Src string `json:"src"`
	Alt string `json:"alt,omitempty"`
}

type SequenceItem struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// MatchPair binds a term to its definition. Both sides share ID.
type MatchPair struct {
	ID         string `json:"id"`
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

type PlainTextProps struct {
	Text string `json:"text"`
}

type ImageProps struct {
	Src string `json:"src"`
	Alt string `json:"alt,omitempty"`
}

type VideoProps struct {
	VideoID string `json:"videoId"`
}

type DividerProps struct{}

// ParentTeacherTipProps is only rendered for teacher and parent sessions.
type ParentTeacherTipProps struct {
	Tip string `json:"tip"`
}

type TrueFalseProps struct {
	Statement string `json:"statement"`
	Answer    bool   `json:"answer"`
}

type ChooseOneProps struct {
	Question string   `json:"question"`
	Options  []Option `json:"options"`
	Answer   string   `json:"answer"`
}

type MultipleChoiceProps struct {
	Question string   `json:"question"`
	Options  []Option `json:"options"`
	Answer   []string `json:"answer"`
}

type SelectImageProps struct {
	Question string     `json:"question"`
	Images   []ImageRef `json:"images"`
	Answer   string     `json:"answer"`
}

// FillInTheBlanksProps marks the blank in Text with "___".
type FillInTheBlanksProps struct {
	Text   string `json:"text"`
	Answer string `json:"answer"`
}

// SequencingProps holds Answer as the canonical order of item ids.
type SequencingProps struct {
	Title  string         `json:"title"`
	Items  []SequenceItem `json:"items"`
	Answer []string       `json:"answer"`
}

type MatchingProps struct {
	Title string      `json:"title"`
	Pairs []MatchPair `json:"pairs"`
}

func (PlainTextProps) Kind() Kind        { return PlainText }
func (ImageProps) Kind() Kind            { return Image }
func (VideoProps) Kind() Kind            { return Video }
func (DividerProps) Kind() Kind          { return Divider }
func (ParentTeacherTipProps) Kind() Kind { return ParentTeacherTip }
func (TrueFalseProps) Kind() Kind        { return TrueFalse }
func (ChooseOneProps) Kind() Kind        { return ChooseOne }
func (MultipleChoiceProps) Kind() Kind   { return MultipleChoice }
func (SelectImageProps) Kind() Kind      { return SelectImage }
func (FillInTheBlanksProps) Kind() Kind  { return FillInTheBlanks }
func (SequencingProps) Kind() Kind       { return Sequencing }
func (MatchingProps) Kind() Kind         { return Matching }

func (PlainTextProps) sealed()        {}
func (ImageProps) sealed()            {}
func (VideoProps) sealed()            {}
func (DividerProps) sealed()          {}
func (ParentTeacherTipProps) sealed() {}
func (TrueFalseProps) sealed()        {}
func (ChooseOneProps) sealed()        {}
func (MultipleChoiceProps) sealed()   {}
func (SelectImageProps) sealed()      {}
func (FillInTheBlanksProps) sealed()  {}
func (SequencingProps) sealed()       {}
func (MatchingProps) sealed()         {}
