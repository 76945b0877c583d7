package layout

// Demo returns the fixed demonstration document used when no extraction
// service is reachable. A fresh slice is built on every call.
func Demo() Document {
	return Document{
		{Kind: KindTitle, Text: "ERNIE Challenge - Sample Document"},
		{Kind: KindHeading, Text: "Introduction"},
		{Kind: KindParagraph, Text: "Welcome to the ERNIE Challenge warmup task demonstration."},
		{Kind: KindHeading, Text: "About ERNIE"},
		{Kind: KindParagraph, Text: "ERNIE (Enhanced Representation through kNowledge IntEgration) is Baidu's state-of-the-art language model series."},
		{Kind: KindSubheading, Text: "Key Features"},
		{Kind: KindListItem, Text: "Advanced natural language understanding"},
		{Kind: KindListItem, Text: "Multimodal capabilities"},
		{Kind: KindListItem, Text: "Efficient fine-tuning support"},
		{Kind: KindListItem, Text: "Open-source models available"},
		{Kind: KindHeading, Text: "PaddleOCR"},
		{Kind: KindParagraph, Text: "PaddleOCR is a powerful OCR toolkit that supports multiple languages and document types."},
		{Kind: KindSubheading, Text: "Capabilities"},
		{Kind: KindListItem, Text: "Text detection and recognition"},
		{Kind: KindListItem, Text: "Layout analysis"},
		{Kind: KindListItem, Text: "Document understanding"},
		{Kind: KindListItem, Text: "Multi-language support"},
		{Kind: KindHeading, Text: "Conclusion"},
		{Kind: KindParagraph, Text: "This demonstration shows the integration of PaddleOCR-VL and ERNIE for web page generation."},
	}
}
