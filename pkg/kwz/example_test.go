package kwz_test

import (
	"errors"
	"fmt"

	"github.com/joshuapare/kwzverify/kwz/builder"
	"github.com/joshuapare/kwzverify/pkg/kwz"
)

// Example verifies a comment file: header, frame metadata and frame data only.
func Example() {
	data := builder.New().
		FrameMeta(make([]byte, 28)).
		FrameData([]byte("frames")).
		Build()

	report := kwz.VerifyBytes(data, nil)
	fmt.Println(report.Variant(), report.MinimalValid(), report.FullValid())
	// Output: KWC true false
}

// ExampleVerifyBytes_corrupt shows how a damaged section is reported.
func ExampleVerifyBytes_corrupt() {
	data, layout := builder.New().
		FrameMeta(make([]byte, 28)).
		FrameData([]byte("frames")).
		BuildLayout()
	data[layout[2].BodyStart] ^= 0x80

	report := kwz.VerifyBytes(data, nil)
	fmt.Println(report.Variant(), report.Status(kwz.KindFrameData))
	for _, err := range report.Errors() {
		var se *kwz.SectionError
		if errors.As(err, &se) {
			fmt.Printf("%s at 0x%X\n", se.Kind, se.Offset)
		}
	}
	// Output:
	// invalid invalid
	// KMC at 0xF8
}

// ExampleVerifyFile demonstrates verifying a file on disk.
func ExampleVerifyFile() {
	report, err := kwz.VerifyFile("note.kwz", nil)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if !report.FullValid() {
		for _, err := range report.Errors() {
			fmt.Println(err)
		}
	}
}
