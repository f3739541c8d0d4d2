// Command soffit-renderer serves soffit render requests over HTTP.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
