package component

// Speech is a line of dialogue shown on the HUD while its entity lives.
type Speech struct {
	Speaker string
	Text    string
}

var SpeechComponent = NewComponent[Speech]()
