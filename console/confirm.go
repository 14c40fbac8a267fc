package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Confirm prompts on stdout and reads a yes/no answer from stdin. Anything
// that is not an affirmative answer (including EOF on a closed or piped
// stdin) counts as no.
func Confirm(prompt string) bool {
	return confirm(prompt, os.Stdin)
}

func confirm(prompt string, in io.Reader) bool {
	fmt.Printf("%s [y/n]: ", prompt)

	response, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && response == "" {
		return false
	}
	response = strings.TrimSpace(response)

	validResponses := []string{"yes", "yep", "y"}
	for _, vr := range validResponses {
		if strings.EqualFold(response, vr) {
			return true
		}
	}

	return false
}
