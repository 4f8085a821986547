// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import "github.com/pdiddy/timeline-engine/pkg/types"

// TemplateRows returns example rows covering all three row types with
// every column exercised at least once. The template command writes
// them under the full 18-column header; the rows also convert cleanly,
// so the generated file doubles as a smoke input.
func TemplateRows() []types.Row {
	return []types.Row{
		{
			types.ColType:            "title",
			types.ColHeadline:        "The Space Race",
			types.ColText:            "Key milestones in the competition between the United States and Soviet Union to achieve superior spaceflight capability.",
			types.ColMediaURL:        "https://upload.wikimedia.org/wikipedia/commons/thumb/6/6c/Apollo_11_Saturn_V_lifting_off_on_July_16%2C_1969.jpg/800px-Apollo_11_Saturn_V_lifting_off_on_July_16%2C_1969.jpg",
			types.ColMediaCaption:    "Apollo 11 Saturn V rocket launches",
			types.ColMediaCredit:     "NASA",
			types.ColMediaAlt:        "Apollo 11 launch",
			types.ColMediaLink:       "https://nasa.gov",
			types.ColMediaLinkTarget: "_blank",
			types.ColBackgroundColor: "#000080",
			types.ColBackgroundImage: "https://example.com/space-bg.jpg",
			types.ColUniqueID:        "title-slide",
		},
		{
			types.ColType:            "event",
			types.ColHeadline:        "Sputnik 1 Launched",
			types.ColText:            "The Soviet Union successfully launches the first artificial satellite, marking the beginning of the Space Age.",
			types.ColStartDate:       "1957-10-04",
			types.ColGroup:           "Soviet Achievements",
			types.ColMediaURL:        "https://upload.wikimedia.org/wikipedia/commons/thumb/b/be/Sputnik_asm.jpg/400px-Sputnik_asm.jpg",
			types.ColMediaCaption:    "Sputnik 1 satellite",
			types.ColMediaCredit:     "Wikipedia",
			types.ColMediaAlt:        "First artificial satellite",
			types.ColMediaLink:       "https://en.wikipedia.org/wiki/Sputnik_1",
			types.ColMediaLinkTarget: "_blank",
			types.ColBackgroundColor: "#8B0000",
			types.ColUniqueID:        "sputnik-launch",
		},
		{
			types.ColType:            "era",
			types.ColHeadline:        "Cold War Space Competition",
			types.ColText:            "Period of intense space exploration rivalry between the US and Soviet Union.",
			types.ColStartDate:       "1957-10-04",
			types.ColEndDate:         "1975-07-17",
			types.ColGroup:           "Space Race Era",
			types.ColBackgroundColor: "#E6E6FA",
			types.ColUniqueID:        "cold-war-era",
		},
	}
}
