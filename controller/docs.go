package controller

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/cwbdev/cwb/constants"
	"github.com/cwbdev/cwb/ui"
	"github.com/pkg/browser"
)

var openURL = browser.OpenURL

// Docs opens the documentation for topic, or lists the known topics.
func (c *Controller) Docs(ctx context.Context, topic string) error {
	if topic == "" {
		listTopics()
		return nil
	}

	url, ok := constants.DocsURLMap[strings.ToLower(topic)]
	if !ok {
		listTopics()
		return fmt.Errorf("unknown docs topic %q", topic)
	}
	if c.dryRun("open %s", url) {
		return nil
	}
	ui.Info("Opening %s", url)
	return openURL(url)
}

func listTopics() {
	topics := make([]string, 0, len(constants.DocsURLMap))
	longest := 0
	for k := range constants.DocsURLMap {
		topics = append(topics, k)
		if len(k) > longest {
			longest = len(k)
		}
	}
	sort.Strings(topics)

	fmt.Printf("%-*s    %s\n", longest, "topic", "url")
	fmt.Printf("%-*s    %s\n", longest, "-----", "---")
	for _, k := range topics {
		fmt.Printf("%-*s => %s\n", longest, k, constants.DocsURLMap[k])
	}
}
