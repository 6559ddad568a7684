package main

// ===============================
// 内置样本
// ===============================

// defaultSamples 返回内置的三档样本文本（短/中/长），
// 未在配置文件中提供 samples 时使用。
func defaultSamples() []Sample {
	return []Sample{
		{
			Name: "short",
			Text: "This is an AI-generated paragraph that needs to be humanized. It contains typical patterns found in machine learning outputs.",
		},
		{
			Name: "medium",
			Text: `Artificial intelligence has become increasingly prevalent in modern society, with applications ranging from natural language processing to computer vision.
The development of deep learning models has revolutionized the field, enabling machines to perform complex tasks with remarkable accuracy.
However, the generated text often exhibits patterns that distinguish it from human writing, necessitating the use of specialized tools for humanization.`,
		},
		{
			Name: "long",
			Text: `The rapid advancement of artificial intelligence technologies has fundamentally transformed the landscape of modern computing and digital communication.
Machine learning algorithms, particularly those based on deep neural networks, have demonstrated remarkable capabilities in processing and generating natural language.
These systems are extensively utilized across various domains, including customer service automation, content generation, and information retrieval.
However, the output produced by these models frequently exhibits distinctive linguistic patterns and stylistic characteristics that differentiate it from authentic human writing.
This distinction arises from the underlying computational mechanisms and training methodologies employed in developing these systems.
Consequently, texts generated purely through artificial means may be readily identifiable by discerning readers or specialized detection algorithms.
The development of humanization techniques has become increasingly important for ensuring that automatically generated content maintains an authentic and natural appearance.
Various approaches have been proposed to address this challenge, ranging from simple rule-based transformations to sophisticated neural network-based methods.`,
		},
	}
}
