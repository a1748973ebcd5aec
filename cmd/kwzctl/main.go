// Command kwzctl verifies the structure and checksums of KWZ animation files.
package main

func main() {
	execute()
}
