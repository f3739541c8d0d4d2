package view_test

import (
	"context"
	"fmt"
	"testing/fstest"

	"github.com/jonwraymond/soffit/view"
)

func ExampleSelector_Resolve() {
	fsys := fstest.MapFS{
		"WEB-INF/soffit/hello/view.jsp":           {},
		"WEB-INF/soffit/hello/view.maximized.jsp": {},
	}
	s, err := view.NewSelector(view.NewFSCatalog(fsys))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	module := view.ModulePath("/WEB-INF/soffit/", "hello")

	for _, state := range []string{"MAXIMIZED", "normal"} {
		p, err := s.Resolve(context.Background(), module, "view", state)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Println(p)
	}
	// Output:
	// /WEB-INF/soffit/hello/view.maximized.jsp
	// /WEB-INF/soffit/hello/view.jsp
}
