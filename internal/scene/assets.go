package scene

func unsplash(photo string) string {
	return "https://images.unsplash.com/" + photo + "?auto=format&fit=crop&w=2000&q=80"
}

var defaultBackground = unsplash("photo-1682686580391-615b1e32be1f")

var backgrounds = map[Key]string{
	NewKey(CategoryClear, SegmentMorning):   unsplash("photo-1470252649378-9c29740c9fa8"),
	NewKey(CategoryClear, SegmentAfternoon): unsplash("photo-1464822759023-fed622ff2c3b"),
	NewKey(CategoryClear, SegmentEvening):   unsplash("photo-1494243762909-b498c7e440a9"),
	NewKey(CategoryClear, SegmentNight):     unsplash("photo-1419242902214-272b3f66ee7a"),

	NewKey(CategoryClouds, SegmentMorning):   unsplash("photo-1464822759023-fed622ff2c3b"),
	NewKey(CategoryClouds, SegmentAfternoon): unsplash("photo-1572763961923-21de3b3e3c88"),
	NewKey(CategoryClouds, SegmentEvening):   unsplash("photo-1504608524841-42fe6f032b4b"),
	NewKey(CategoryClouds, SegmentNight):     unsplash("photo-1534088568595-a066f410bcda"),

	NewKey(CategoryRain, SegmentMorning):   unsplash("photo-1428592953211-077101b2021b"),
	NewKey(CategoryRain, SegmentAfternoon): unsplash("photo-1493314894560-5c412a56c17c"),
	NewKey(CategoryRain, SegmentEvening):   unsplash("photo-1519692933481-e162a57d6721"),
	NewKey(CategoryRain, SegmentNight):     unsplash("photo-1509635022432-0220ac12960b"),

	NewKey(CategorySnow, SegmentMorning):   unsplash("photo-1418985991508-e47386d96a71"),
	NewKey(CategorySnow, SegmentAfternoon): unsplash("photo-1486496146582-9ffcd0b2b2b7"),
	NewKey(CategorySnow, SegmentEvening):   unsplash("photo-1507181080368-cc2195abacdf"),
	NewKey(CategorySnow, SegmentNight):     unsplash("photo-1478265409131-1f65c88f965c"),

	NewKey(CategoryThunderstorm, SegmentMorning):   unsplash("photo-1605727216801-e27ce1d0cc28"),
	NewKey(CategoryThunderstorm, SegmentAfternoon): unsplash("photo-1527482797697-8795b05a13fe"),
	NewKey(CategoryThunderstorm, SegmentEvening):   unsplash("photo-1461696114087-397271a7aedc"),
	NewKey(CategoryThunderstorm, SegmentNight):     unsplash("photo-1475116127127-e3ce09ee84e1"),
}

// segmentBackgrounds is used when a recognized category has no entry above.
var segmentBackgrounds = map[Segment]string{
	SegmentMorning:   unsplash("photo-1470252649378-9c29740c9fa8"),
	SegmentAfternoon: unsplash("photo-1464822759023-fed622ff2c3b"),
	SegmentEvening:   unsplash("photo-1494243762909-b498c7e440a9"),
	SegmentNight:     unsplash("photo-1419242902214-272b3f66ee7a"),
}
