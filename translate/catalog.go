package translate

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// en-US message keys. Other languages fall back to these.
// Keys containing "$" are left to the fmt fallback.
var catalogEnUS = []string{
	"Tried to execute instruction without completing definition",
	"Tried to execute instruction with incorrect number of arguments",
	"Register does not exist",
	"Number is out of bounds!",
	"Invalid Label!",
	"Label name already exists!",
	"Label %v does not exist",
	"Infinite loop detected",
	"Tried to execute an instruction that cannot be executed",
	"line %d %v",
	"line %d '%v' %v",
	"halted after %d steps",
	"failed at line %d after %d steps: %v",
	"registers used:",
	"no registers used",
	"output format unknown",
	"step limit must be positive",
	"define name invalid",
}

func registerCatalog() {
	for _, key := range catalogEnUS {
		message.SetString(language.AmericanEnglish, key, key)
	}
}
