// tvdbq is a CLI client for browsing TV metadata from the XML API.
package main

func main() {
	Execute()
}
