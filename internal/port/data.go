// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package port

// DefaultFleet returns the built-in port dataset. It can be replaced at
// runtime by a TOML fleet file (see LoadFleet).
func DefaultFleet() *Fleet {
	return &Fleet{
		Vessels: []Vessel{
			{
				ID:      "v-pacific-glory",
				Name:    "MV Pacific Glory",
				Type:    "Container ship",
				Status:  StatusDelayed,
				ETA:     "Nov 8, 06:00",
				Berth:   "berth-2",
				Cargo:   "2,400 TEU",
				Flag:    "Panama",
				Remarks: "Engine failure reported, tug assistance requested",
			},
			{
				ID:      "v-msc-horizon",
				Name:    "MSC Horizon",
				Type:    "Container ship",
				Status:  StatusWaiting,
				ETA:     "Nov 7, 18:30",
				Berth:   "",
				Cargo:   "3,100 TEU",
				Flag:    "Liberia",
				Remarks: "Requested early berthing window",
			},
			{
				ID:      "v-atlantic-trader",
				Name:    "Atlantic Trader",
				Type:    "Bulk carrier",
				Status:  StatusApproaching,
				ETA:     "Nov 9, 04:15",
				Berth:   "",
				Cargo:   "48,000 t grain",
				Flag:    "Marshall Islands",
				Remarks: "",
			},
			{
				ID:     "v-nordic-star",
				Name:   "Nordic Star",
				Type:   "Tanker",
				Status: StatusDocked,
				ETA:    "",
				Berth:  "berth-1",
				Cargo:  "Crude oil",
				Flag:   "Norway",
			},
		},
		Berths: []Berth{
			{
				ID:       "berth-1",
				Name:     "Berth 1",
				Status:   "occupied",
				Occupant: "Nordic Star",
				Schedule: []BerthSlot{
					{VesselID: "v-nordic-star", Vessel: "Nordic Star", From: "Nov 6, 22:00", To: "Nov 8, 10:00"},
					{VesselID: "v-atlantic-trader", Vessel: "Atlantic Trader", From: "Nov 9, 06:00", To: "Nov 11, 18:00"},
				},
			},
			{
				ID:     "berth-2",
				Name:   "Berth 2",
				Status: "available",
				Schedule: []BerthSlot{
					{VesselID: "v-pacific-glory", Vessel: "MV Pacific Glory", From: "Nov 8, 08:00", To: "Nov 10, 12:00"},
				},
			},
			{
				ID:     "berth-3",
				Name:   "Berth 3",
				Status: "maintenance",
				Schedule: []BerthSlot{
					{VesselID: "v-msc-horizon", Vessel: "MSC Horizon", From: "Nov 8, 00:00", To: "Nov 9, 14:00"},
				},
			},
		},
		Messages: []Message{
			{
				ID:         "msg-1",
				Channel:    ChannelEmail,
				Sender:     "Capt. Reyes",
				SenderRole: "Captain, MV Pacific Glory",
				Subject:    "Engine failure - requesting tug assistance",
				Body:       "Main engine failure at 13:40 local. Drifting 12nm off approach channel. Requesting two tugs and a revised berthing window.",
				Timestamp:  "Nov 7, 13:47",
				Vessel:     "MV Pacific Glory",
				Category:   "incident",
				Unread:     true,
			},
			{
				ID:         "msg-2",
				Channel:    ChannelEmail,
				Sender:     "Elena Vasquez",
				SenderRole: "Agent, MSC",
				Subject:    "MSC Horizon - early berthing request",
				Body:       "MSC Horizon is ahead of schedule and requests berthing at 18:30 instead of 23:00. Please confirm availability of Berth 3.",
				Timestamp:  "Nov 7, 09:12",
				Vessel:     "MSC Horizon",
				Category:   "schedule",
				Unread:     true,
			},
			{
				ID:         "msg-3",
				Channel:    ChannelWhatsApp,
				Sender:     "J. Okafor",
				SenderRole: "Pilot",
				Subject:    "Pilot boarding for Nordic Star departure",
				Body:       "Confirming pilot boarding Nordic Star at 09:30 tomorrow for departure.",
				Timestamp:  "Nov 7, 16:05",
				Vessel:     "Nordic Star",
				Category:   "operations",
			},
			{
				ID:         "msg-4",
				Channel:    ChannelRadio,
				Sender:     "Harbor Control",
				SenderRole: "VTS",
				Subject:    "Channel congestion advisory",
				Body:       "Approach channel restricted to one-way traffic between 14:00 and 16:00 due to dredging operations.",
				Timestamp:  "Nov 6, 11:30",
				Category:   "advisory",
			},
			{
				ID:         "msg-5",
				Channel:    ChannelAIS,
				Sender:     "AIS feed",
				SenderRole: "Automated",
				Subject:    "Atlantic Trader position update",
				Body:       "Atlantic Trader 86nm out, SOG 12.4kn, ETA Nov 9 04:15.",
				Timestamp:  "Nov 7, 15:00",
				Vessel:     "Atlantic Trader",
				Category:   "position",
			},
			{
				ID:         "msg-6",
				Channel:    ChannelEmail,
				Sender:     "Port Maintenance",
				SenderRole: "Maintenance lead",
				Subject:    "Berth 3 crane repair complete ahead of schedule",
				Body:       "Crane 3B repair completed. Berth 3 can return to service from Nov 8, 00:00.",
				Timestamp:  "Nov 7, 14:20",
				Category:   "maintenance",
				Unread:     true,
			},
			{
				ID:         "msg-7",
				Channel:    ChannelWhatsApp,
				Sender:     "M. Lindqvist",
				SenderRole: "Chief Officer, Nordic Star",
				Subject:    "Cargo discharge complete",
				Body:       "Discharge completed at 15:45. Ready for departure clearance.",
				Timestamp:  "Nov 7, 15:50",
				Vessel:     "Nordic Star",
				Category:   "operations",
			},
			{
				ID:         "msg-8",
				Channel:    ChannelRadio,
				Sender:     "MV Pacific Glory",
				SenderRole: "Bridge",
				Subject:    "Tug rendezvous confirmed",
				Body:       "Tugs Resolute and Pioneer alongside at 17:20. Proceeding to anchorage under tow.",
				Timestamp:  "Nov 7, 17:25",
				Vessel:     "MV Pacific Glory",
				Category:   "incident",
			},
			{
				ID:         "msg-9",
				Channel:    ChannelEmail,
				Sender:     "Customs Office",
				SenderRole: "Customs",
				Subject:    "Nordic Star outbound documentation cleared",
				Body:       "All outbound cargo documentation for Nordic Star verified and cleared. No holds.",
				Timestamp:  "Nov 7, 11:40",
				Vessel:     "Nordic Star",
				Category:   "clearance",
			},
			{
				ID:         "msg-10",
				Channel:    ChannelEmail,
				Sender:     "T. Marchetti",
				SenderRole: "Agent, Atlantic Bulk",
				Subject:    "Atlantic Trader grain survey booking",
				Body:       "Requesting draft survey and grain inspection on arrival Nov 9. Surveyor to board at Berth 1.",
				Timestamp:  "Nov 6, 16:22",
				Vessel:     "Atlantic Trader",
				Category:   "operations",
				Unread:     true,
			},
			{
				ID:         "msg-11",
				Channel:    ChannelEmail,
				Sender:     "Harbour Master",
				SenderRole: "Harbour Master",
				Subject:    "Gale warning - mooring review required",
				Body:       "With winds gusting 45kn forecast from Nov 8 evening, all vessels alongside must double up moorings by 15:00.",
				Timestamp:  "Nov 7, 18:10",
				Category:   "weather",
				Unread:     true,
			},
			{
				ID:         "msg-12",
				Channel:    ChannelEmail,
				Sender:     "Capt. Reyes",
				SenderRole: "Captain, MV Pacific Glory",
				Subject:    "Spare parts request - fuel injection pump",
				Body:       "Require replacement fuel injection pump, maker MAN B&W part 5540-110. Can the port arrange delivery to anchorage?",
				Timestamp:  "Nov 7, 19:02",
				Vessel:     "MV Pacific Glory",
				Category:   "incident",
				Unread:     true,
			},
			{
				ID:         "msg-13",
				Channel:    ChannelEmail,
				Sender:     "Elena Vasquez",
				SenderRole: "Agent, MSC",
				Subject:    "MSC Horizon crew change manifest",
				Body:       "Twelve crew joining, eight signing off during the Berth 3 call. Manifest attached for immigration.",
				Timestamp:  "Nov 6, 10:05",
				Vessel:     "MSC Horizon",
				Category:   "crew",
			},
			{
				ID:         "msg-14",
				Channel:    ChannelEmail,
				Sender:     "Terminal Ops",
				SenderRole: "Terminal planner",
				Subject:    "Crane allocation for Nov 8",
				Body:       "Cranes 2A and 2B allocated to the Berth 2 arrival; crane 3B to the Berth 3 call.",
				Timestamp:  "Nov 7, 16:45",
				Category:   "schedule",
			},
			{
				ID:         "msg-15",
				Channel:    ChannelWhatsApp,
				Sender:     "D. Hassan",
				SenderRole: "Tug master, Resolute",
				Subject:    "Tow update",
				Body:       "Pacific Glory under tow, making 4kn. ETA anchorage 21:30.",
				Timestamp:  "Nov 7, 18:40",
				Vessel:     "MV Pacific Glory",
				Category:   "incident",
			},
			{
				ID:         "msg-16",
				Channel:    ChannelWhatsApp,
				Sender:     "Elena Vasquez",
				SenderRole: "Agent, MSC",
				Subject:    "Berth 3 confirmation?",
				Body:       "Any word on the 18:30 window? Master is asking.",
				Timestamp:  "Nov 7, 12:15",
				Vessel:     "MSC Horizon",
				Category:   "schedule",
				Unread:     true,
			},
			{
				ID:         "msg-17",
				Channel:    ChannelWhatsApp,
				Sender:     "J. Okafor",
				SenderRole: "Pilot",
				Subject:    "Fog bank lifting",
				Body:       "Visibility back above 2nm in the approach. Pilot ops normal.",
				Timestamp:  "Nov 6, 07:55",
				Category:   "advisory",
			},
			{
				ID:         "msg-18",
				Channel:    ChannelWhatsApp,
				Sender:     "Port Maintenance",
				SenderRole: "Maintenance lead",
				Subject:    "Fender inspection Berth 1",
				Body:       "Fender 1C shows cracking after Nordic Star berthing. Scheduling inspection for Nov 8 morning.",
				Timestamp:  "Nov 7, 17:10",
				Category:   "maintenance",
				Unread:     true,
			},
			{
				ID:         "msg-19",
				Channel:    ChannelRadio,
				Sender:     "Harbor Control",
				SenderRole: "VTS",
				Subject:    "Anchorage assignment - MSC Horizon",
				Body:       "MSC Horizon assigned anchorage A2 pending berth availability. Maintain listening watch channel 12.",
				Timestamp:  "Nov 7, 08:50",
				Vessel:     "MSC Horizon",
				Category:   "operations",
			},
			{
				ID:         "msg-20",
				Channel:    ChannelRadio,
				Sender:     "Nordic Star",
				SenderRole: "Bridge",
				Subject:    "Bunker barge alongside",
				Body:       "Bunker barge secured alongside at 06:10. Commencing transfer, est. 4 hours.",
				Timestamp:  "Nov 7, 06:15",
				Vessel:     "Nordic Star",
				Category:   "operations",
			},
			{
				ID:         "msg-21",
				Channel:    ChannelRadio,
				Sender:     "Harbor Control",
				SenderRole: "VTS",
				Subject:    "Small craft advisory",
				Body:       "All small craft to clear the main channel from 14:00 for one-way traffic during dredging.",
				Timestamp:  "Nov 6, 13:45",
				Category:   "advisory",
			},
			{
				ID:         "msg-22",
				Channel:    ChannelRadio,
				Sender:     "Atlantic Trader",
				SenderRole: "Bridge",
				Subject:    "ETA update and pilot request",
				Body:       "Revised ETA Nov 9, 04:15. Request pilot boarding at the fairway buoy.",
				Timestamp:  "Nov 7, 14:30",
				Vessel:     "Atlantic Trader",
				Category:   "schedule",
			},
			{
				ID:         "msg-23",
				Channel:    ChannelAIS,
				Sender:     "AIS feed",
				SenderRole: "Automated",
				Subject:    "MSC Horizon anchored",
				Body:       "MSC Horizon anchored at A2, 17:05. SOG 0.0kn.",
				Timestamp:  "Nov 7, 17:06",
				Vessel:     "MSC Horizon",
				Category:   "position",
			},
			{
				ID:         "msg-24",
				Channel:    ChannelAIS,
				Sender:     "AIS feed",
				SenderRole: "Automated",
				Subject:    "MV Pacific Glory drifting",
				Body:       "MV Pacific Glory SOG 0.8kn, heading variable, 12nm from fairway buoy. NUC signal active.",
				Timestamp:  "Nov 7, 13:52",
				Vessel:     "MV Pacific Glory",
				Category:   "position",
				Unread:     true,
			},
			{
				ID:         "msg-25",
				Channel:    ChannelAIS,
				Sender:     "AIS feed",
				SenderRole: "Automated",
				Subject:    "Nordic Star moored",
				Body:       "Nordic Star moored Berth 1 since Nov 6, 22:14.",
				Timestamp:  "Nov 6, 22:15",
				Vessel:     "Nordic Star",
				Category:   "position",
			},
			{
				ID:         "msg-26",
				Channel:    ChannelAIS,
				Sender:     "AIS feed",
				SenderRole: "Automated",
				Subject:    "Tug Resolute underway",
				Body:       "Tug Resolute underway toward MV Pacific Glory, SOG 11.8kn.",
				Timestamp:  "Nov 7, 16:40",
				Category:   "position",
			},
			{
				ID:         "msg-27",
				Channel:    ChannelEmail,
				Sender:     "Weather Service",
				SenderRole: "Forecaster",
				Subject:    "Marine forecast Nov 8-9",
				Body:       "SW winds 30-45kn from Nov 8 18:00, easing Nov 9 midday. Seas 3-4m in the outer roadstead.",
				Timestamp:  "Nov 7, 05:30",
				Category:   "weather",
			},
		},
		Alerts: []Alert{
			{
				ID:              "alert-1",
				Severity:        SeverityCritical,
				Title:           "MV Pacific Glory engine failure",
				Description:     "Main engine failure 12nm off the approach channel. Tug assistance dispatched; berthing delayed to Nov 8, 06:00.",
				Timestamp:       "Nov 7, 13:47",
				Vessel:          "MV Pacific Glory",
				Category:        "incident",
				RelatedEntities: []string{"MV Pacific Glory", "Berth 2", "Tug Resolute", "Tug Pioneer"},
				Insight:         "Berth 2 window can absorb the delay if Nordic Star departs on schedule.",
				SuggestedAction: "Hold the Berth 2 slot and confirm anchorage A1 for the tow.",
			},
			{
				ID:              "alert-2",
				Severity:        SeverityWarning,
				Title:           "Schedule conflict at Berth 3",
				Description:     "MSC Horizon's early berthing request overlaps the tail of Berth 3 maintenance.",
				Timestamp:       "Nov 7, 09:30",
				Vessel:          "MSC Horizon",
				Category:        "schedule",
				RelatedEntities: []string{"MSC Horizon", "Berth 3"},
				Insight:         "Crane repair finished early; Berth 3 can open at 00:00, clearing the conflict.",
				SuggestedAction: "Confirm the 18:30 window with the MSC agent once maintenance signs off.",
			},
			{
				ID:              "alert-3",
				Severity:        SeverityInfo,
				Title:           "Dredging advisory in approach channel",
				Description:     "One-way traffic between 14:00 and 16:00 on Nov 6 due to dredging.",
				Timestamp:       "Nov 6, 11:30",
				Category:        "advisory",
				RelatedEntities: []string{"Approach channel", "Dredger Pelican"},
				SuggestedAction: "Sequence inbound traffic before 14:00; notify agents of the window.",
			},
			{
				ID:              "alert-4",
				Severity:        SeverityWarning,
				Title:           "Anchorage congestion building",
				Description:     "Four vessels at anchorage; waiting times trending above 8 hours.",
				Timestamp:       "Nov 5, 20:15",
				Category:        "congestion",
				RelatedEntities: []string{"Anchorage A2", "Anchorage A4", "MSC Horizon"},
				Insight:         "Pulling MSC Horizon's window forward would free anchorage slot A4.",
				SuggestedAction: "Approve the early berthing request to relieve the anchorage queue.",
			},
			{
				ID:              "alert-5",
				Severity:        SeverityInfo,
				Title:           "Nordic Star discharge ahead of plan",
				Description:     "Cargo discharge completed 2 hours early; departure clearance requested.",
				Timestamp:       "Nov 7, 15:50",
				Vessel:          "Nordic Star",
				Category:        "operations",
				RelatedEntities: []string{"Nordic Star", "Berth 1"},
				SuggestedAction: "Issue departure clearance and bring the pilot booking forward.",
			},
			{
				ID:              "alert-6",
				Severity:        SeverityCritical,
				Title:           "Gale warning for outer roadstead",
				Description:     "Winds gusting 45kn forecast from Nov 8, 18:00. Small craft operations suspended.",
				Timestamp:       "Nov 7, 18:00",
				Category:        "weather",
				RelatedEntities: []string{"Outer roadstead", "Atlantic Trader", "Pilot service"},
				Insight:         "Consider advancing Atlantic Trader's pilot boarding before the front arrives.",
				SuggestedAction: "Double up moorings alongside and suspend small craft from 15:00.",
			},
		},
		Workflows: []Workflow{
			{
				ID:          "wf-1",
				Title:       "Tug dispatch for MV Pacific Glory",
				Status:      WorkflowRunning,
				Vessel:      "MV Pacific Glory",
				Trigger:     "Engine failure report (msg-1)",
				Description: "Dispatch two tugs, reserve anchorage, rebook Berth 2 window.",
				CreatedAt:   "Nov 7, 13:50",
			},
			{
				ID:          "wf-2",
				Title:       "Rebook Berth 3 for early arrival",
				Status:      WorkflowPending,
				Vessel:      "MSC Horizon",
				Trigger:     "Early berthing request (msg-2)",
				Description: "Confirm maintenance completion, shift berthing window to 18:30.",
				CreatedAt:   "Nov 7, 09:15",
			},
			{
				ID:          "wf-3",
				Title:       "Departure clearance for Nordic Star",
				Status:      WorkflowCompleted,
				Vessel:      "Nordic Star",
				Trigger:     "Discharge complete (msg-7)",
				Description: "Issue clearance, book pilot for 09:30 departure.",
				CreatedAt:   "Nov 7, 16:00",
			},
			{
				ID:          "wf-4",
				Title:       "Weather contingency plan",
				Status:      WorkflowPending,
				Trigger:     "Gale warning (alert-6)",
				Description: "Review moorings, suspend small craft, notify agents of possible delays.",
				CreatedAt:   "Nov 7, 18:05",
			},
		},
	}
}
