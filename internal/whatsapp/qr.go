package whatsapp

import (
	"io"

	"github.com/mdp/qrterminal/v3"
)

// QRPrinter renders a pairing code for scanning from the phone app.
func QRPrinter(w io.Writer) func(code string) {
	return func(code string) {
		qrterminal.GenerateHalfBlock(code, qrterminal.L, w)
	}
}
