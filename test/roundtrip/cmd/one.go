package cmd

import (
	"fmt"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/zostay/go-contact/email"
	"github.com/zostay/go-contact/person"
	"github.com/zostay/go-contact/phone"
	"github.com/zostay/go-contact/postal"
)

var oneCmd = &cobra.Command{
	Use:   "one kind value",
	Short: "Shows the diff of a single value round-trip",
	Long: `Parses a single contact value and diffs the original input against the
canonical re-rendering. The kind must be one of: phone, zip, email, name.`,
	Args: cobra.ExactArgs(2),
	Run:  RunOne,
}

func init() {
	rootCmd.AddCommand(oneCmd)
}

func RunOne(cmd *cobra.Command, args []string) {
	kind, input := args[0], args[1]

	out, err := render(kind, input)
	if err != nil {
		panic(err)
	}

	fmt.Printf("in  = %s\n", input)
	fmt.Printf("out = %s\n", out)

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(input, out, false)
	fmt.Println(dmp.DiffPrettyText(diffs))
}

func render(kind, input string) (string, error) {
	switch kind {
	case "phone":
		n, err := phone.Parse(input)
		if err != nil {
			return "", err
		}
		return n.Format(), nil
	case "zip":
		z, err := postal.ParseZip(input)
		if err != nil {
			return "", err
		}
		return z.String(), nil
	case "email":
		a, err := email.ParseLiberal(input)
		if err != nil {
			return "", err
		}
		return a.Format(), nil
	case "name":
		n, err := person.ParseName(input)
		if err != nil {
			return "", err
		}
		return n.String(), nil
	}
	return "", fmt.Errorf("unknown value kind %q", kind)
}
