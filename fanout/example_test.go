/*
Copyright 2026 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package fanout_test

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"sigs.k8s.io/fanout-utils/fanout"
	"sigs.k8s.io/fanout-utils/internal/testserver"
	"sigs.k8s.io/fanout-utils/request"
)

func Example() {
	server := testserver.New()
	defer server.Close()

	reqs := []*request.Request{}
	for _, url := range []string{server.URL + "/", server.URL + "/text"} {
		req, err := request.New(request.MethodGet, url)
		if err != nil {
			logrus.Fatal(err)
		}
		reqs = append(reqs, req)
	}

	outcomes, err := fanout.NewDispatcher().DispatchCollect(context.Background(), reqs)
	if err != nil {
		logrus.Fatal(err)
	}

	for _, outcome := range outcomes {
		fmt.Println(outcome.StatusCode, outcome.Succeeded(), outcome.Body)
	}
	// Output:
	// 200 true map[message:Hello, world!]
	// 200 false map[text:Hello, world!]
}

func ExampleDispatcher_DispatchSplit() {
	server := testserver.New()
	defer server.Close()

	urls := []string{server.URL + "/", server.URL + "/exception", server.URL + "/text"}
	reqs := make([]*request.Request, 0, len(urls))
	for _, url := range urls {
		req, err := request.New(request.MethodGet, url)
		if err != nil {
			logrus.Fatal(err)
		}
		reqs = append(reqs, req)
	}

	delivered, errs, err := fanout.NewDispatcher().DispatchSplit(context.Background(), reqs)
	if err != nil {
		logrus.Fatal(err)
	}

	fmt.Printf("delivered: %d, failed: %d\n", len(delivered), len(errs))
	// Output: delivered: 2, failed: 1
}
